package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator aplica as migrações SQL embutidas no binário
type Migrator struct {
	migrate *migrate.Migrate
}

func New(db *sql.DB) (*Migrator, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar migrações embutidas: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	return &Migrator{migrate: m}, nil
}

// Up aplica as migrações pendentes
func (m *Migrator) Up() error {
	logrus.Info("Aplicando migrações do banco de dados")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, err := m.migrate.Version()
	if err != nil {
		return fmt.Errorf("erro ao obter versão das migrações: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas com sucesso")

	return nil
}

// Run cria o migrator e aplica as migrações pendentes.
// O driver não é fechado para não encerrar a conexão compartilhada.
func Run(db *sql.DB) error {
	m, err := New(db)
	if err != nil {
		return err
	}

	return m.Up()
}
