package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

func newProductRepositoryMock(t *testing.T) (ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProductRepository(postgres.NewConnectionFromDB(db)), mock
}

func productRow(now time.Time, id int64, productID, name string, orderNo int, gross, expense, refunds, pnl, perUnit float64) *sqlmock.Rows {
	return sqlmock.NewRows(productColumns).
		AddRow(id, productID, name, orderNo, gross, expense, refunds, pnl, perUnit, now, now)
}

func TestProductRepository_Upsert(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	upsertQuery := regexp.QuoteMeta("INSERT INTO products (product_id,name,order_no,gross_revenue,expense,refunds,profit_and_loss,profit_and_loss_per_unit) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")

	tests := []struct {
		name            string
		fields          domain.ProductFields
		setupMock       func(mock sqlmock.Sqlmock)
		expectedProduct *domain.Product
		expectedErr     error
		unreachable     bool
	}{
		{
			name: "Sucesso - grava os campos calculados",
			fields: domain.ProductFields{
				Name:                 "Widget",
				OrderNo:              2,
				GrossRevenue:         150,
				Expense:              40.5,
				Refunds:              0,
				ProfitAndLoss:        109.5,
				ProfitAndLossPerUnit: 54.75,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertQuery).
					WithArgs("101", "Widget", 2, 150.0, 40.5, 0.0, 109.5, 54.75).
					WillReturnRows(productRow(now, 1, "101", "Widget", 2, 150, 40.5, 0, 109.5, 54.75))
			},
			expectedProduct: &domain.Product{
				ID:                   1,
				ProductID:            "101",
				Name:                 "Widget",
				OrderNo:              2,
				GrossRevenue:         150,
				Expense:              40.5,
				ProfitAndLoss:        109.5,
				ProfitAndLossPerUnit: 54.75,
				CreatedAt:            now,
				UpdatedAt:            now,
			},
		},
		{
			name: "Sucesso - aplica nome padrão e arredondamento",
			fields: domain.ProductFields{
				OrderNo:       -3,
				GrossRevenue:  10.005,
				Expense:       2.701,
				ProfitAndLoss: 7.3,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertQuery).
					WithArgs("202", domain.UnknownProductName, 0, 10.01, 2.7, 0.0, 7.3, 0.0).
					WillReturnRows(productRow(now, 2, "202", domain.UnknownProductName, 0, 10.01, 2.7, 0, 7.3, 0))
			},
			expectedProduct: &domain.Product{
				ID:            2,
				ProductID:     "202",
				Name:          domain.UnknownProductName,
				GrossRevenue:  10.01,
				Expense:       2.7,
				ProfitAndLoss: 7.3,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		{
			name:   "Erro - banco inacessível",
			fields: domain.ProductFields{Name: "Widget"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertQuery).
					WillReturnError(&pq.Error{Code: "08006", Message: "connection failure"})
			},
			expectedErr: domain.ErrStoreUnavailable,
			unreachable: true,
		},
		{
			name:   "Erro - escrita rejeitada",
			fields: domain.ProductFields{Name: "Widget"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertQuery).
					WillReturnError(&pq.Error{Code: "23514", Message: "check constraint"})
			},
			expectedErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productID := "101"
			if tt.expectedProduct != nil {
				productID = tt.expectedProduct.ProductID
			}

			repo, mock := newProductRepositoryMock(t)
			tt.setupMock(mock)

			product, err := repo.Upsert(context.Background(), productID, tt.fields)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, tt.unreachable, domain.IsStoreUnreachable(err))
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_UpsertIsIdempotent(t *testing.T) {
	now := time.Now()
	repo, mock := newProductRepositoryMock(t)

	fields := domain.ProductFields{
		Name:                 "Widget",
		OrderNo:              1,
		GrossRevenue:         200,
		Expense:              54,
		Refunds:              50,
		ProfitAndLoss:        96,
		ProfitAndLossPerUnit: 96,
	}

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("INSERT INTO products").
			WithArgs("101", "Widget", 1, 200.0, 54.0, 50.0, 96.0, 96.0).
			WillReturnRows(productRow(now, 1, "101", "Widget", 1, 200, 54, 50, 96, 96))
	}

	first, err := repo.Upsert(context.Background(), "101", fields)
	require.NoError(t, err)

	second, err := repo.Upsert(context.Background(), "101", fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByIDs(t *testing.T) {
	now := time.Now()

	t.Run("Sucesso - ordena pela receita bruta", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(2), "202", "Gadget", 4, 300.0, 81.0, 0.0, 219.0, 54.75, now, now).
			AddRow(int64(1), "101", "Widget", 2, 150.0, 40.5, 0.0, 109.5, 54.75, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE product_id IN ($1,$2) ORDER BY gross_revenue DESC")).
			WithArgs("101", "202").
			WillReturnRows(rows)

		products, err := repo.GetByIDs(context.Background(), []string{"101", "202"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "202", products[0].ProductID)
		assert.Equal(t, "101", products[1].ProductID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sucesso - lista vazia não consulta o banco", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		products, err := repo.GetByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NotNil(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro - falha na consulta", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		mock.ExpectQuery("FROM products").
			WillReturnError(errors.New("syntax error"))

		products, err := repo.GetByIDs(context.Background(), []string{"101"})
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.False(t, domain.IsStoreUnreachable(err))
		assert.Nil(t, products)
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	now := time.Now()
	selectQuery := regexp.QuoteMeta("FROM products WHERE product_id = $1")

	t.Run("Sucesso - produto encontrado", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		mock.ExpectQuery(selectQuery).
			WithArgs("101").
			WillReturnRows(productRow(now, 1, "101", "Widget", 2, 150, 40.5, 0, 109.5, 54.75))

		product, err := repo.GetByID(context.Background(), "101")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, 2, product.OrderNo)
	})

	t.Run("Sucesso - produto inexistente", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		mock.ExpectQuery(selectQuery).
			WithArgs("999").
			WillReturnError(sql.ErrNoRows)

		product, err := repo.GetByID(context.Background(), "999")
		assert.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Erro - conexão encerrada", func(t *testing.T) {
		repo, mock := newProductRepositoryMock(t)

		mock.ExpectQuery(selectQuery).
			WithArgs("101").
			WillReturnError(sql.ErrConnDone)

		product, err := repo.GetByID(context.Background(), "101")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.True(t, domain.IsStoreUnreachable(err))
		assert.Nil(t, product)
	})
}
