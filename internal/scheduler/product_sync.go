// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/syncing"
)

// ProductSyncScheduler é o contrato usado pelas rotas de cron
type ProductSyncScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type ProductSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type ProductSyncService struct {
	scheduler           *gocron.Scheduler
	syncer              syncing.ProductSyncer
	config              ProductSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.SyncSummary
	lastError           string
	now                 func() time.Time
}

func NewProductSyncService(syncer syncing.ProductSyncer, cfg *config.Config) *ProductSyncService {
	syncConfig := ProductSyncConfig{
		CronSchedule: cfg.ProductSync.CronSchedule,
		SyncEnabled:  cfg.ProductSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de produtos carregada")

	return &ProductSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		syncer:    syncer,
		config:    syncConfig,
		now:       time.Now,
	}
}

func (s *ProductSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização de produtos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de produtos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncProducts(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização agendada de produtos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de produtos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de produtos")
		s.scheduler.Stop()
	}()

	return nil
}

// begin marca a execução como iniciada; retorna falso se já houver outra em andamento
func (s *ProductSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *ProductSyncService) finish(result *domain.SyncResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()

	if err != nil {
		s.lastError = err.Error()
		return
	}

	s.lastError = ""
	if result != nil {
		summary := result.Summary
		s.lastSummary = &summary
	}
}

// SyncProducts executa uma sincronização completa, ignorando a chamada se outra estiver em andamento
func (s *ProductSyncService) SyncProducts(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Sincronização de produtos já está em execução")
		return nil
	}

	return s.run(ctx)
}

// run executa a sincronização já marcada por begin e registra o resultado
func (s *ProductSyncService) run(ctx context.Context) error {
	logrus.Info("Iniciando sincronização de produtos")

	result, err := s.syncer.SyncProducts(ctx, syncing.SyncOptions{})
	s.finish(result, err)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  result.Summary.RunID,
		"total":   result.Summary.Total,
		"created": result.Summary.Created,
		"updated": result.Summary.Updated,
		"skipped": result.Summary.Skipped,
		"failed":  result.Summary.Failed,
	}).Info("Sincronização de produtos concluída")

	return nil
}

// TriggerManualSync reserva a execução e dispara a sincronização em segundo plano.
// Retorna falso quando já existe uma execução em andamento.
func (s *ProductSyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Sincronização de produtos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de produtos")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de produtos")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ProductSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
		"last_error":             s.lastError,
	}
}
