// Package log encapsula o logrus com os campos de rastreio da API:
// correlation_id por requisição e run_id por sincronização.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RunIDKey         contextKey = "run_id"
)

// Em desenvolvimento apenas estes campos são impressos
var developmentFields = map[string]struct{}{
	string(CorrelationIDKey): {},
	string(RunIDKey):         {},
	"product_id":             {},
	"method":                 {},
	"path":                   {},
	"status_code":            {},
	"duration_ms":            {},
	"error":                  {},
}

type entryLogger struct {
	entry *logrus.Entry
}

// L é o logger base, sem campos de contexto
var L Logger = newEntryLogger()

func newEntryLogger() Logger {
	return &entryLogger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure define o formato dos logs e o nível a partir de LOG_LEVEL.
// Níveis inválidos caem para info.
func Configure(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newEntryLogger()

	return logLevel
}

func keepField(key string) bool {
	if !IsDevelopment() {
		return true
	}
	_, ok := developmentFields[key]
	return ok
}

func (l *entryLogger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &entryLogger{entry: l.entry.WithFields(kept)}
}

func (l *entryLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.entry.WithError(err)}
}

func (l *entryLogger) Debug(args ...any)                { l.entry.Debug(args...) }
func (l *entryLogger) Info(args ...any)                 { l.entry.Info(args...) }
func (l *entryLogger) Warn(args ...any)                 { l.entry.Warn(args...) }
func (l *entryLogger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }
func (l *entryLogger) Error(args ...any)                { l.entry.Error(args...) }

// WithCorrelationID gera um novo ID de correlação e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// WithRunID associa o contexto a uma execução de sincronização
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	runID, _ := ctx.Value(RunIDKey).(string)
	return runID
}

// ForContext retorna L com o correlation_id e o run_id presentes no contexto
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[string(CorrelationIDKey)] = correlationID
	}
	if runID := GetRunID(ctx); runID != "" {
		fields[string(RunIDKey)] = runID
	}

	return L.WithFields(fields)
}
