package syncing

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky"
	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
	"github.com/vfg2006/sticky-analytics-api/pkg/utils"
)

type ProductSyncer interface {
	SyncProducts(ctx context.Context, opts SyncOptions) (*domain.SyncResult, error)
}

// SyncOptions altera o comportamento de uma execução
type SyncOptions struct {
	// RefreshCatalog descarta o catálogo em cache antes de sincronizar
	RefreshCatalog bool
}

type Service struct {
	productRepository repository.ProductRepository
	stickyService     sticky.StickyIntegrator
	cfg               *config.Config
	now               func() time.Time
}

func NewService(
	productRepository repository.ProductRepository,
	stickyService sticky.StickyIntegrator,
	cfg *config.Config,
) ProductSyncer {
	return &Service{
		productRepository: productRepository,
		stickyService:     stickyService,
		cfg:               cfg,
		now:               time.Now,
	}
}

// run acumula o estado de uma execução; os contadores são protegidos por mu
type run struct {
	mu       sync.Mutex
	summary  domain.SyncSummary
	products []domain.SyncedProduct
	abortErr error
}

func (r *run) record(product domain.SyncedProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.Created {
		r.summary.Created++
	} else {
		r.summary.Updated++
	}
	r.products = append(r.products, product)
}

func (r *run) fail() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summary.Failed++
}

// abort registra o primeiro erro fatal da execução
func (r *run) abort(err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.abortErr != nil {
		return false
	}
	r.abortErr = err
	return true
}

// SyncProducts executa uma sincronização completa dos produtos alvo
func (s *Service) SyncProducts(ctx context.Context, opts SyncOptions) (*domain.SyncResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(domain.ErrInternal, StageRun, "", "Falha ao gerar identificador da execução")
	}

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando sincronização de produtos")

	if opts.RefreshCatalog {
		s.stickyService.InvalidateProductCatalog()
	}

	catalog, err := s.stickyService.FetchProductCatalog(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao obter catálogo de produtos")
		if !errors.Is(err, domain.ErrRemoteUnavailable) {
			err = &domain.RemoteError{Operation: "product_index", Err: err}
		}
		return nil, NewSyncError(err, StageCatalog, runID, "Falha ao obter catálogo de produtos da plataforma")
	}

	targets := make(map[string]struct{}, len(s.cfg.Products.TargetIDs))
	for _, id := range s.cfg.Products.TargetIDs {
		targets[id] = struct{}{}
	}

	state := &run{
		summary: domain.SyncSummary{
			RunID:             runID,
			TargetProducts:    len(s.cfg.Products.TargetIDs),
			AvailableProducts: len(catalog),
			StartedAt:         s.now(),
		},
		products: make([]domain.SyncedProduct, 0, len(targets)),
	}

	toSync := make([]string, 0, len(targets))
	for _, productID := range catalog.IDs() {
		if _, ok := targets[productID]; !ok {
			logger.WithField("product_id", productID).Debug("Produto fora da lista alvo, ignorando")
			state.summary.Skipped++
			continue
		}
		toSync = append(toSync, productID)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	maxJobs := s.cfg.ProductSync.MaxConcurrentJobs
	if maxJobs <= 0 {
		maxJobs = 1
	}

	semaphore := make(chan struct{}, maxJobs)
	var wg sync.WaitGroup

	for _, productID := range toSync {
		if runCtx.Err() != nil {
			break
		}

		semaphore <- struct{}{}
		if runCtx.Err() != nil {
			<-semaphore
			break
		}
		wg.Add(1)

		go func(productID string, item stickydomain.Product) {
			defer wg.Done()
			defer func() { <-semaphore }()

			synced, err := s.syncProduct(runCtx, productID, item)
			if err != nil {
				productLogger := logger.WithField("product_id", productID).WithError(err)

				if domain.IsStoreUnreachable(err) {
					if state.abort(err) {
						productLogger.Error("Banco de dados inacessível, abortando sincronização")
					}
					cancel()
					return
				}

				productLogger.Warn("Falha ao sincronizar produto, seguindo para o próximo")
				state.fail()
				return
			}

			state.record(*synced)
		}(productID, catalog[productID])
	}

	wg.Wait()

	if state.abortErr != nil {
		return nil, NewSyncError(state.abortErr, StageStore, runID, "Banco de dados inacessível durante a sincronização")
	}

	if err := ctx.Err(); err != nil {
		return nil, NewSyncError(err, StageRun, runID, "Sincronização cancelada")
	}

	sort.Slice(state.products, func(i, j int) bool {
		return state.products[i].ID < state.products[j].ID
	})

	state.summary.Total = state.summary.Created + state.summary.Updated
	state.summary.CompletedAt = s.now()

	logger.WithFields(log.Fields{
		"created": state.summary.Created,
		"updated": state.summary.Updated,
		"skipped": state.summary.Skipped,
		"failed":  state.summary.Failed,
	}).Info("Sincronização de produtos concluída")

	return &domain.SyncResult{
		Summary:  state.summary,
		Products: state.products,
	}, nil
}

// syncProduct calcula os valores financeiros de um produto e grava o snapshot
func (s *Service) syncProduct(ctx context.Context, productID string, item stickydomain.Product) (*domain.SyncedProduct, error) {
	financials := s.stickyService.FetchProductFinancials(ctx, productID)

	// Pedidos não obtidos por cancelamento não podem sobrescrever o snapshot anterior
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	existing, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if name == "" {
		name = domain.UnknownProductName
	}

	product, err := s.productRepository.Upsert(ctx, productID, financials.ToFields(name))
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"product_id": productID,
		"created":    existing == nil,
	}).Debug("Produto sincronizado")

	return &domain.SyncedProduct{
		ID:                   productID,
		Name:                 product.Name,
		Created:              existing == nil,
		OrderNo:              product.OrderNo,
		GrossRevenue:         product.GrossRevenue,
		Expense:              product.Expense,
		Refunds:              product.Refunds,
		ProfitAndLoss:        product.ProfitAndLoss,
		ProfitAndLossPerUnit: product.ProfitAndLossPerUnit,
		DateRange:            financials.DateRange,
	}, nil
}
