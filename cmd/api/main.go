package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/stickyclient"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sticky-analytics-api/internal/api"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/scheduler"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Run(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	productRepo := repository.NewProductRepository(pgConn)

	stickyClient := stickyclient.NewClient(cfg)
	stickyIntegrator := sticky.New(cfg, stickyClient)

	syncService := syncing.NewService(productRepo, stickyIntegrator, cfg)
	analyticsService := analyzing.NewService(productRepo, cfg)
	authenticator := authenticating.NewService(cfg)

	logrus.WithFields(logrus.Fields{
		"target_products": len(cfg.Products.TargetIDs),
		"auth_enabled":    authenticator.Enabled(),
	}).Info("Serviços de produtos inicializados")

	productSyncService := scheduler.NewProductSyncService(syncService, cfg)
	if err := productSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de produtos")
	} else {
		logrus.Info("Agendador de sincronização de produtos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		analyticsService,
		syncService,
		stickyIntegrator,
		authenticator,
		productSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger posiciona o processo no diretório do binário para encontrar o .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Configure(logrus.InfoLevel.String())
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
