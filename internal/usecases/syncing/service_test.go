package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
	stickymocks "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/mocks"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var testRange = domain.DateRange{Start: "03/07/2025", End: "03/10/2025"}

func newTestConfig(targets []string, jobs int) *config.Config {
	return &config.Config{
		Products:    config.Products{TargetIDs: targets},
		ProductSync: config.ProductSync{MaxConcurrentJobs: jobs},
	}
}

func financials(orderNo int, gross, expense, refunds float64) domain.ProductFinancials {
	f := domain.DeriveProductFinancials(orderNo, gross, expense, refunds)
	f.DateRange = testRange
	return f
}

func storedProduct(productID, name string, f domain.ProductFinancials) *domain.Product {
	return &domain.Product{
		ProductID:            productID,
		Name:                 name,
		OrderNo:              f.OrderNo,
		GrossRevenue:         f.GrossRevenue,
		Expense:              f.Expense,
		Refunds:              f.Refunds,
		ProfitAndLoss:        f.ProfitAndLoss,
		ProfitAndLossPerUnit: f.ProfitAndLossPerUnit,
	}
}

func TestSyncProducts(t *testing.T) {
	widget := financials(2, 150, 40.5, 0)
	gadget := financials(1, 200, 54, 50)

	tests := []struct {
		name           string
		targets        []string
		jobs           int
		opts           SyncOptions
		setupMocks     func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository)
		expectedErr    error
		expectedResult func(t *testing.T, result *domain.SyncResult)
	}{
		{
			name:    "Sucesso - produtos fora da lista alvo são ignorados",
			targets: []string{"101"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{
					"101": {ProductID: "101", Name: "Widget"},
					"202": {ProductID: "202", Name: "Gadget"},
				}, nil)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "101").Return(widget)
				repo.EXPECT().GetByID(gomock.Any(), "101").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), "101", widget.ToFields("Widget")).
					Return(storedProduct("101", "Widget", widget), nil)
			},
			expectedResult: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, 1, result.Summary.Total)
				assert.Equal(t, 1, result.Summary.Created)
				assert.Equal(t, 0, result.Summary.Updated)
				assert.Equal(t, 1, result.Summary.Skipped)
				assert.Equal(t, 1, result.Summary.TargetProducts)
				assert.Equal(t, 2, result.Summary.AvailableProducts)
				assert.NotEmpty(t, result.Summary.RunID)

				require.Len(t, result.Products, 1)
				assert.Equal(t, "101", result.Products[0].ID)
				assert.True(t, result.Products[0].Created)
				assert.Equal(t, 109.5, result.Products[0].ProfitAndLoss)
				assert.Equal(t, 54.75, result.Products[0].ProfitAndLossPerUnit)
				assert.Equal(t, testRange, result.Products[0].DateRange)
			},
		},
		{
			name:    "Sucesso - produto existente é atualizado",
			targets: []string{"101", "202"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{
					"101": {ProductID: "101", Name: "Widget"},
					"202": {ProductID: "202"},
				}, nil)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "101").Return(widget)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "202").Return(gadget)
				repo.EXPECT().GetByID(gomock.Any(), "101").Return(storedProduct("101", "Widget", widget), nil)
				repo.EXPECT().GetByID(gomock.Any(), "202").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), "101", gomock.Any()).
					Return(storedProduct("101", "Widget", widget), nil)
				repo.EXPECT().Upsert(gomock.Any(), "202", gadget.ToFields(domain.UnknownProductName)).
					Return(storedProduct("202", domain.UnknownProductName, gadget), nil)
			},
			expectedResult: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, 2, result.Summary.Total)
				assert.Equal(t, 1, result.Summary.Created)
				assert.Equal(t, 1, result.Summary.Updated)
				assert.Equal(t, 0, result.Summary.Skipped)

				require.Len(t, result.Products, 2)
				assert.False(t, result.Products[0].Created)
				assert.Equal(t, domain.UnknownProductName, result.Products[1].Name)
				assert.Equal(t, 96.0, result.Products[1].ProfitAndLoss)
			},
		},
		{
			name:    "Sucesso - falha de gravação isolada no produto",
			targets: []string{"101", "202"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{
					"101": {ProductID: "101", Name: "Widget"},
					"202": {ProductID: "202", Name: "Gadget"},
				}, nil)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "101").Return(widget)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "202").Return(gadget)
				repo.EXPECT().GetByID(gomock.Any(), "101").Return(nil, nil)
				repo.EXPECT().GetByID(gomock.Any(), "202").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), "101", gomock.Any()).
					Return(nil, &domain.StoreError{Operation: "upsert", Err: errors.New("check constraint")})
				repo.EXPECT().Upsert(gomock.Any(), "202", gomock.Any()).
					Return(storedProduct("202", "Gadget", gadget), nil)
			},
			expectedResult: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, 1, result.Summary.Total)
				assert.Equal(t, 1, result.Summary.Created)
				assert.Equal(t, 1, result.Summary.Failed)

				require.Len(t, result.Products, 1)
				assert.Equal(t, "202", result.Products[0].ID)
			},
		},
		{
			name:    "Sucesso - pedidos indisponíveis gravam valores zerados",
			targets: []string{"101"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				zero := financials(0, 0, 0, 0)

				sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{
					"101": {ProductID: "101", Name: "Widget"},
				}, nil)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "101").Return(zero)
				repo.EXPECT().GetByID(gomock.Any(), "101").Return(nil, nil)
				repo.EXPECT().Upsert(gomock.Any(), "101", domain.ProductFields{Name: "Widget"}).
					Return(storedProduct("101", "Widget", zero), nil)
			},
			expectedResult: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, 1, result.Summary.Total)
				require.Len(t, result.Products, 1)
				assert.Equal(t, 0, result.Products[0].OrderNo)
				assert.Equal(t, 0.0, result.Products[0].ProfitAndLossPerUnit)
			},
		},
		{
			name:    "Sucesso - refresh descarta o catálogo em cache",
			targets: []string{"101"},
			opts:    SyncOptions{RefreshCatalog: true},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				gomock.InOrder(
					sticky.EXPECT().InvalidateProductCatalog(),
					sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{}, nil),
				)
			},
			expectedResult: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, 0, result.Summary.Total)
				assert.Equal(t, 0, result.Summary.AvailableProducts)
				assert.Empty(t, result.Products)
			},
		},
		{
			name:    "Erro - catálogo indisponível aborta a execução",
			targets: []string{"101"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				sticky.EXPECT().FetchProductCatalog(gomock.Any()).
					Return(nil, &domain.RemoteError{Operation: "product_index", Code: "342", Message: "Invalid credentials"})
			},
			expectedErr: domain.ErrRemoteUnavailable,
		},
		{
			name:    "Erro - banco inacessível aborta a execução",
			targets: []string{"101", "202"},
			setupMocks: func(sticky *stickymocks.MockStickyIntegrator, repo *mocks.MockProductRepository) {
				sticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{
					"101": {ProductID: "101", Name: "Widget"},
					"202": {ProductID: "202", Name: "Gadget"},
				}, nil)
				sticky.EXPECT().FetchProductFinancials(gomock.Any(), "101").Return(widget)
				repo.EXPECT().GetByID(gomock.Any(), "101").
					Return(nil, &domain.StoreError{Operation: "get_by_id", Unreachable: true, Err: &pq.Error{Code: "08006"}})
			},
			expectedErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSticky := stickymocks.NewMockStickyIntegrator(ctrl)
			mockRepo := mocks.NewMockProductRepository(ctrl)
			tt.setupMocks(mockSticky, mockRepo)

			service := NewService(mockRepo, mockSticky, newTestConfig(tt.targets, tt.jobs))

			result, err := service.SyncProducts(context.Background(), tt.opts)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, ErrSyncAborted)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.expectedResult(t, result)
		})
	}
}

func TestSyncProducts_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSticky := stickymocks.NewMockStickyIntegrator(ctrl)
	mockRepo := mocks.NewMockProductRepository(ctrl)

	targets := []string{"105", "101", "104", "102", "103"}
	catalog := stickydomain.Catalog{}
	for _, id := range targets {
		catalog[id] = stickydomain.Product{ProductID: id, Name: "Produto " + id}
	}

	f := financials(1, 10, 2.7, 0)

	mockSticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(catalog, nil)
	mockSticky.EXPECT().FetchProductFinancials(gomock.Any(), gomock.Any()).Return(f).Times(len(targets))
	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(len(targets))
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, productID string, fields domain.ProductFields) (*domain.Product, error) {
			return storedProduct(productID, fields.Name, f), nil
		}).
		Times(len(targets))

	service := NewService(mockRepo, mockSticky, newTestConfig(targets, 3))

	result, err := service.SyncProducts(context.Background(), SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Summary.Total)
	assert.Equal(t, 5, result.Summary.Created)
	require.Len(t, result.Products, 5)

	for i, id := range []string{"101", "102", "103", "104", "105"} {
		assert.Equal(t, id, result.Products[i].ID)
	}
}

func TestSyncProducts_RunTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSticky := stickymocks.NewMockStickyIntegrator(ctrl)
	mockRepo := mocks.NewMockProductRepository(ctrl)

	mockSticky.EXPECT().FetchProductCatalog(gomock.Any()).Return(stickydomain.Catalog{}, nil)

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	calls := 0

	service := &Service{
		productRepository: mockRepo,
		stickyService:     mockSticky,
		cfg:               newTestConfig([]string{"101"}, 1),
		now: func() time.Time {
			calls++
			return start.Add(time.Duration(calls) * time.Second)
		},
	}

	result, err := service.SyncProducts(context.Background(), SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, start.Add(time.Second), result.Summary.StartedAt)
	assert.Equal(t, start.Add(2*time.Second), result.Summary.CompletedAt)
}

func TestSyncProducts_RunIDInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSticky := stickymocks.NewMockStickyIntegrator(ctrl)
	mockRepo := mocks.NewMockProductRepository(ctrl)

	var seenRunID string
	mockSticky.EXPECT().FetchProductCatalog(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (stickydomain.Catalog, error) {
			seenRunID = log.GetRunID(ctx)
			return stickydomain.Catalog{}, nil
		})

	service := NewService(mockRepo, mockSticky, newTestConfig([]string{"101"}, 1))

	result, err := service.SyncProducts(context.Background(), SyncOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, seenRunID)
	assert.Equal(t, result.Summary.RunID, seenRunID)
}
