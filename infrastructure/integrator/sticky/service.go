package sticky

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/stickyclient"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/pkg/utils"
)

const (
	allCampaigns = "all"
	allCriteria  = "all"
	allSearch    = "all"
)

type StickyIntegrator interface {
	FetchProductCatalog(ctx context.Context) (stickydomain.Catalog, error)
	RefreshProductCatalog(ctx context.Context) (stickydomain.Catalog, error)
	InvalidateProductCatalog()
	FetchOrderIDs(ctx context.Context, productID string, dateRange domain.DateRange) ([]string, int)
	FetchOrderDetails(ctx context.Context, orderIDs []string) []stickydomain.Order
	FetchProductFinancials(ctx context.Context, productID string) domain.ProductFinancials
	DateRange() domain.DateRange
}

type StickyService struct {
	cfg    *config.Config
	Client stickyclient.Client
	cache  *CatalogCache
	now    func() time.Time
}

type Option func(*StickyService)

// WithClock substitui o relógio usado na janela financeira e no cache
func WithClock(now func() time.Time) Option {
	return func(s *StickyService) {
		s.now = now
	}
}

func New(cfg *config.Config, client stickyclient.Client, opts ...Option) StickyIntegrator {
	service := &StickyService{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	service.cache = NewCatalogCache(cfg.Products.CatalogCacheTTL, service.fetchCatalog, service.now)

	return service
}

// FetchProductCatalog retorna o catálogo dos produtos alvo, usando o cache quando válido
func (s *StickyService) FetchProductCatalog(ctx context.Context) (stickydomain.Catalog, error) {
	return s.cache.Get(ctx)
}

// RefreshProductCatalog ignora a validade do cache e busca o catálogo novamente
func (s *StickyService) RefreshProductCatalog(ctx context.Context) (stickydomain.Catalog, error) {
	return s.cache.Refresh(ctx)
}

func (s *StickyService) InvalidateProductCatalog() {
	s.cache.Invalidate()
}

func (s *StickyService) fetchCatalog(ctx context.Context) (stickydomain.Catalog, error) {
	resp, err := s.Client.GetProductIndex(ctx, s.cfg.Products.TargetIDs)
	if err != nil {
		return nil, err
	}

	if resp.Products == nil {
		resp.Products = stickydomain.Catalog{}
	}

	ids := resp.Products.IDs()
	logrus.WithField("products", len(ids)).Info("Catálogo de produtos obtido da plataforma")

	if len(ids) > 0 && logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Exemplo de produto do catálogo: %s", utils.PrettyJson(resp.Products[ids[0]]))
	}

	return resp.Products, nil
}

// FetchOrderIDs busca os pedidos de um produto na janela informada.
// Falhas na plataforma são registradas e tratadas como nenhum pedido encontrado.
func (s *StickyService) FetchOrderIDs(ctx context.Context, productID string, dateRange domain.DateRange) ([]string, int) {
	params := stickydomain.OrderFindRequest{
		CampaignID: allCampaigns,
		StartDate:  dateRange.Start,
		EndDate:    dateRange.End,
		ProductID:  []string{productID},
		Criteria:   allCriteria,
		SearchType: allSearch,
	}

	resp, err := s.Client.FindOrders(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": productID,
			"start_date": dateRange.Start,
			"end_date":   dateRange.End,
		}).WithError(err).Warn("Falha ao buscar pedidos do produto, considerando sem pedidos")
		return []string{}, 0
	}

	orderIDs := []string(resp.OrderIDs)
	if orderIDs == nil {
		orderIDs = []string{}
	}

	orderNo := int(resp.TotalOrders)
	if orderNo <= 0 {
		orderNo = len(orderIDs)
	}

	return orderIDs, orderNo
}

// FetchOrderDetails busca os detalhes dos pedidos informados.
// Falhas na plataforma são registradas e retornam uma lista vazia.
func (s *StickyService) FetchOrderDetails(ctx context.Context, orderIDs []string) []stickydomain.Order {
	ids := make([]int, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		id, err := strconv.Atoi(orderID)
		if err != nil {
			logrus.WithField("order_id", orderID).Warn("Identificador de pedido inválido, ignorando")
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return []stickydomain.Order{}
	}

	resp, err := s.Client.ViewOrders(ctx, ids)
	if err != nil {
		logrus.WithField("orders", len(ids)).WithError(err).Warn("Falha ao buscar detalhes dos pedidos, considerando sem pedidos")
		return []stickydomain.Order{}
	}

	keys := make([]string, 0, len(resp.Data))
	for key := range resp.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	orders := make([]stickydomain.Order, 0, len(keys))
	for _, key := range keys {
		order := resp.Data[key]
		if order.OrderID == "" {
			order.OrderID = key
		}
		orders = append(orders, order)
	}

	return orders
}

// FetchProductFinancials calcula os valores financeiros de um produto na janela configurada
func (s *StickyService) FetchProductFinancials(ctx context.Context, productID string) domain.ProductFinancials {
	dateRange := s.DateRange()

	orderIDs, orderNo := s.FetchOrderIDs(ctx, productID, dateRange)

	orders := []stickydomain.Order{}
	if len(orderIDs) > 0 {
		orders = s.FetchOrderDetails(ctx, orderIDs)
	}

	grossRevenue, expense, refunds := stickydomain.Aggregate(orders).Float64()

	financials := domain.DeriveProductFinancials(orderNo, grossRevenue, expense, refunds)
	financials.DateRange = dateRange

	logrus.WithFields(logrus.Fields{
		"product_id":    productID,
		"order_no":      financials.OrderNo,
		"orders":        len(orders),
		"gross_revenue": financials.GrossRevenue,
		"pnl":           financials.ProfitAndLoss,
	}).Debug("Valores financeiros do produto calculados")

	return financials
}

// DateRange retorna a janela de consulta terminando na data de referência configurada
// (ou na data atual quando não configurada)
func (s *StickyService) DateRange() domain.DateRange {
	end := utils.TruncateToDay(s.now())

	endDate, err := s.cfg.FinancialWindow.WindowEndDate()
	if err != nil {
		logrus.WithError(err).Warn("Data de referência inválida, usando a data atual")
	} else if endDate != nil {
		end = *endDate
	}

	days := s.cfg.FinancialWindow.Days
	if days <= 0 {
		days = 3
	}

	start := end.AddDate(0, 0, -days)

	return domain.DateRange{
		Start: utils.FormatStickyDate(start),
		End:   utils.FormatStickyDate(end),
	}
}
