package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

const (
	productsTable = "products"
)

var productColumns = []string{
	"id",
	"product_id",
	"name",
	"order_no",
	"gross_revenue",
	"expense",
	"refunds",
	"profit_and_loss",
	"profit_and_loss_per_unit",
	"created_at",
	"updated_at",
}

type ProductRepository interface {
	Upsert(ctx context.Context, productID string, fields domain.ProductFields) (*domain.Product, error)
	GetByIDs(ctx context.Context, productIDs []string) ([]*domain.Product, error)
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// Upsert cria o produto se não existir ou sobrescreve os campos financeiros.
// Os campos são normalizados (nome padrão e arredondamento) antes da gravação.
func (r *productRepository) Upsert(ctx context.Context, productID string, fields domain.ProductFields) (*domain.Product, error) {
	fields = fields.Normalize()

	query := squirrel.
		Insert(productsTable).
		Columns(
			"product_id",
			"name",
			"order_no",
			"gross_revenue",
			"expense",
			"refunds",
			"profit_and_loss",
			"profit_and_loss_per_unit",
		).
		Values(
			productID,
			fields.Name,
			fields.OrderNo,
			fields.GrossRevenue,
			fields.Expense,
			fields.Refunds,
			fields.ProfitAndLoss,
			fields.ProfitAndLossPerUnit,
		).
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				name = EXCLUDED.name,
				order_no = EXCLUDED.order_no,
				gross_revenue = EXCLUDED.gross_revenue,
				expense = EXCLUDED.expense,
				refunds = EXCLUDED.refunds,
				profit_and_loss = EXCLUDED.profit_and_loss,
				profit_and_loss_per_unit = EXCLUDED.profit_and_loss_per_unit,
				updated_at = NOW()
			RETURNING ` + strings.Join(productColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, storeError("upsert", fmt.Errorf("erro ao construir a query: %w", err))
	}

	product, err := scanProduct(r.conn.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return nil, storeError("upsert", fmt.Errorf("erro ao salvar produto %s: %w", productID, err))
	}

	return product, nil
}

// GetByIDs retorna os produtos informados ordenados pela receita bruta (maior primeiro)
func (r *productRepository) GetByIDs(ctx context.Context, productIDs []string) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	sqlQuery, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"product_id": productIDs}).
		OrderBy("gross_revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storeError("get_by_ids", fmt.Errorf("erro ao construir a query: %w", err))
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, storeError("get_by_ids", fmt.Errorf("erro ao executar a query: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, storeError("get_by_ids", fmt.Errorf("erro ao escanear produto: %w", err))
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("get_by_ids", fmt.Errorf("erro durante a iteração de linhas: %w", err))
	}

	return products, nil
}

// GetByID retorna (nil, nil) quando o produto ainda não foi sincronizado
func (r *productRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	sqlQuery, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, storeError("get_by_id", fmt.Errorf("erro ao construir a query: %w", err))
	}

	product, err := scanProduct(r.conn.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get_by_id", fmt.Errorf("erro ao buscar produto %s: %w", productID, err))
	}

	return product, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product

	err := row.Scan(
		&product.ID,
		&product.ProductID,
		&product.Name,
		&product.OrderNo,
		&product.GrossRevenue,
		&product.Expense,
		&product.Refunds,
		&product.ProfitAndLoss,
		&product.ProfitAndLossPerUnit,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func storeError(operation string, err error) *domain.StoreError {
	return &domain.StoreError{
		Operation:   operation,
		Unreachable: isConnectionError(err),
		Err:         err,
	}
}

// isConnectionError identifica falhas de conexão com o banco (não de consulta)
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Classe 08: connection exception; 57P01-57P03: servidor encerrando ou indisponível
		switch {
		case pqErr.Code.Class() == "08":
			return true
		case pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03":
			return true
		}
	}

	return false
}
