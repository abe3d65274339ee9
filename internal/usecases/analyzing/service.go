package analyzing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

const zeroAverage = "0.00"

type AnalyticsReader interface {
	Summarize(ctx context.Context) (*domain.AnalyticsResponse, error)
	ScanProducts(ctx context.Context) (*domain.ProductsResponse, error)
}

type Service struct {
	productRepository repository.ProductRepository
	cfg               *config.Config
}

func NewService(productRepository repository.ProductRepository, cfg *config.Config) AnalyticsReader {
	return &Service{
		productRepository: productRepository,
		cfg:               cfg,
	}
}

// ScanProducts lista os produtos alvo já sincronizados, maior receita primeiro
func (s *Service) ScanProducts(ctx context.Context) (*domain.ProductsResponse, error) {
	products, err := s.productRepository.GetByIDs(ctx, s.cfg.Products.TargetIDs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos no banco de dados")
		return nil, err
	}

	return &domain.ProductsResponse{
		Products: products,
		Total:    len(products),
	}, nil
}

// Summarize soma os valores dos produtos alvo e calcula o lucro médio por pedido
func (s *Service) Summarize(ctx context.Context) (*domain.AnalyticsResponse, error) {
	products, err := s.productRepository.GetByIDs(ctx, s.cfg.Products.TargetIDs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos para o resumo")
		return nil, err
	}

	summary := domain.AnalyticsSummary{
		TotalProducts:  len(products),
		TargetProducts: len(s.cfg.Products.TargetIDs),
	}

	grossRevenue := decimal.Zero
	expense := decimal.Zero
	refunds := decimal.Zero
	profitAndLoss := decimal.Zero

	rows := make([]domain.ProductAnalytics, 0, len(products))
	for _, product := range products {
		grossRevenue = grossRevenue.Add(decimal.NewFromFloat(product.GrossRevenue))
		expense = expense.Add(decimal.NewFromFloat(product.Expense))
		refunds = refunds.Add(decimal.NewFromFloat(product.Refunds))
		profitAndLoss = profitAndLoss.Add(decimal.NewFromFloat(product.ProfitAndLoss))
		summary.TotalOrderNo += product.OrderNo

		rows = append(rows, domain.ProductAnalytics{
			ProductID:            product.ProductID,
			Name:                 product.Name,
			OrderNo:              product.OrderNo,
			GrossRevenue:         product.GrossRevenue,
			Expense:              product.Expense,
			Refunds:              product.Refunds,
			ProfitAndLoss:        product.ProfitAndLoss,
			ProfitAndLossPerUnit: product.ProfitAndLossPerUnit,
			UpdatedAt:            product.UpdatedAt,
		})
	}

	summary.TotalGrossRevenue = grossRevenue.InexactFloat64()
	summary.TotalExpense = expense.InexactFloat64()
	summary.TotalRefunds = refunds.InexactFloat64()
	summary.TotalProfitAndLoss = profitAndLoss.InexactFloat64()
	summary.AvgProfitPerOrder = averageProfitPerOrder(profitAndLoss, summary.TotalOrderNo)

	return &domain.AnalyticsResponse{
		Summary:  summary,
		Products: rows,
	}, nil
}

func averageProfitPerOrder(profitAndLoss decimal.Decimal, totalOrderNo int) string {
	if totalOrderNo <= 0 {
		return zeroAverage
	}

	return profitAndLoss.Div(decimal.NewFromInt(int64(totalOrderNo))).StringFixed(2)
}
