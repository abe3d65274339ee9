package analyzing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestConfig(targets ...string) *config.Config {
	return &config.Config{
		Products: config.Products{TargetIDs: targets},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name            string
		targets         []string
		products        []*domain.Product
		repoErr         error
		expectedErr     error
		expectedSummary domain.AnalyticsSummary
	}{
		{
			name:     "Sucesso - nenhum produto sincronizado",
			targets:  []string{"101", "202"},
			products: []*domain.Product{},
			expectedSummary: domain.AnalyticsSummary{
				TotalProducts:     0,
				TargetProducts:    2,
				AvgProfitPerOrder: "0.00",
			},
		},
		{
			name:    "Sucesso - soma os produtos alvo",
			targets: []string{"101", "202", "303"},
			products: []*domain.Product{
				{ProductID: "202", Name: "Gadget", OrderNo: 1, GrossRevenue: 200, Expense: 54, Refunds: 50, ProfitAndLoss: 96, ProfitAndLossPerUnit: 96},
				{ProductID: "101", Name: "Widget", OrderNo: 2, GrossRevenue: 150, Expense: 40.5, ProfitAndLoss: 109.5, ProfitAndLossPerUnit: 54.75},
			},
			expectedSummary: domain.AnalyticsSummary{
				TotalProducts:      2,
				TargetProducts:     3,
				TotalGrossRevenue:  350,
				TotalExpense:       94.5,
				TotalRefunds:       50,
				TotalProfitAndLoss: 205.5,
				TotalOrderNo:       3,
				AvgProfitPerOrder:  "68.50",
			},
		},
		{
			name:    "Sucesso - produtos sem pedidos",
			targets: []string{"101"},
			products: []*domain.Product{
				{ProductID: "101", Name: "Widget"},
			},
			expectedSummary: domain.AnalyticsSummary{
				TotalProducts:     1,
				TargetProducts:    1,
				AvgProfitPerOrder: "0.00",
			},
		},
		{
			name:    "Sucesso - prejuízo médio",
			targets: []string{"101"},
			products: []*domain.Product{
				{ProductID: "101", Name: "Widget", OrderNo: 3, GrossRevenue: 10, Expense: 2.7, Refunds: 17.3, ProfitAndLoss: -10, ProfitAndLossPerUnit: -3.33},
			},
			expectedSummary: domain.AnalyticsSummary{
				TotalProducts:      1,
				TargetProducts:     1,
				TotalGrossRevenue:  10,
				TotalExpense:       2.7,
				TotalRefunds:       17.3,
				TotalProfitAndLoss: -10,
				TotalOrderNo:       3,
				AvgProfitPerOrder:  "-3.33",
			},
		},
		{
			name:        "Erro - banco indisponível",
			targets:     []string{"101"},
			repoErr:     &domain.StoreError{Operation: "get_by_ids", Unreachable: true},
			expectedErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockProductRepository(ctrl)
			mockRepo.EXPECT().GetByIDs(gomock.Any(), tt.targets).Return(tt.products, tt.repoErr)

			service := NewService(mockRepo, newTestConfig(tt.targets...))

			response, err := service.Summarize(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSummary, response.Summary)
			assert.Len(t, response.Products, len(tt.products))
		})
	}
}

func TestScanProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := []*domain.Product{
		{ProductID: "202", Name: "Gadget", GrossRevenue: 200},
		{ProductID: "101", Name: "Widget", GrossRevenue: 150},
	}

	mockRepo := mocks.NewMockProductRepository(ctrl)
	mockRepo.EXPECT().GetByIDs(gomock.Any(), []string{"101", "202"}).Return(products, nil)

	service := NewService(mockRepo, newTestConfig("101", "202"))

	response, err := service.ScanProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, response.Total)
	assert.Equal(t, products, response.Products)
}
