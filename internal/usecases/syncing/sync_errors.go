package syncing

import (
	"errors"
	"fmt"
)

// Etapas da sincronização em que a execução pode ser abortada
const (
	StageCatalog = "catalog"
	StageStore   = "store"
	StageRun     = "run"
)

var (
	ErrSyncAborted = errors.New("sincronização de produtos abortada")
)

// SyncError é o erro que interrompe uma execução inteira
type SyncError struct {
	Err     error  // Erro base (domain.ErrRemoteUnavailable, domain.ErrStoreUnavailable...)
	Stage   string // Etapa em que a execução parou
	RunID   string
	Details string
}

func (e *SyncError) Error() string {
	msg := fmt.Sprintf("%s [%s]", ErrSyncAborted.Error(), e.Stage)
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func (e *SyncError) Is(target error) bool {
	return target == ErrSyncAborted
}

func NewSyncError(err error, stage, runID, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Stage:   stage,
		RunID:   runID,
		Details: details,
	}
}
