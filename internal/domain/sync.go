package domain

import "time"

// SyncSummary contém os contadores de uma execução de sincronização
type SyncSummary struct {
	RunID             string    `json:"runId"`
	Total             int       `json:"total"`
	Created           int       `json:"created"`
	Updated           int       `json:"updated"`
	Skipped           int       `json:"skipped"`
	Failed            int       `json:"failed"`
	TargetProducts    int       `json:"targetProducts"`
	AvailableProducts int       `json:"availableProducts"`
	StartedAt         time.Time `json:"startedAt"`
	CompletedAt       time.Time `json:"completedAt"`
}

// SyncedProduct é o detalhe de um produto processado na execução
type SyncedProduct struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Created              bool      `json:"created"`
	OrderNo              int       `json:"orderNo"`
	GrossRevenue         float64   `json:"grossRevenue"`
	Expense              float64   `json:"expense"`
	Refunds              float64   `json:"refunds"`
	ProfitAndLoss        float64   `json:"profitAndLoss"`
	ProfitAndLossPerUnit float64   `json:"profitAndLossPerUnit"`
	DateRange            DateRange `json:"dateRange"`
}

// SyncResult é a resposta de uma execução de sincronização
type SyncResult struct {
	Summary  SyncSummary     `json:"summary"`
	Products []SyncedProduct `json:"products"`
}
