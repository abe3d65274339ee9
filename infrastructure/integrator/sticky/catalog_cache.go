package sticky

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
)

// CatalogFetcher busca o catálogo diretamente na plataforma
type CatalogFetcher func(ctx context.Context) (stickydomain.Catalog, error)

// CatalogCache mantém o último catálogo obtido com data de expiração.
// O mapa retornado é compartilhado e não deve ser alterado pelos chamadores.
type CatalogCache struct {
	mu        sync.RWMutex
	value     stickydomain.Catalog
	expiresAt time.Time
	ttl       time.Duration
	fetch     CatalogFetcher
	now       func() time.Time
}

func NewCatalogCache(ttl time.Duration, fetch CatalogFetcher, now func() time.Time) *CatalogCache {
	if now == nil {
		now = time.Now
	}

	return &CatalogCache{
		ttl:   ttl,
		fetch: fetch,
		now:   now,
	}
}

// Get retorna o catálogo em cache se ainda válido, senão busca um novo
func (c *CatalogCache) Get(ctx context.Context) (stickydomain.Catalog, error) {
	c.mu.RLock()
	if c.value != nil && c.now().Before(c.expiresAt) {
		catalog := c.value
		c.mu.RUnlock()
		logrus.Debug("Usando catálogo de produtos em cache")
		return catalog, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh busca o catálogo na plataforma e atualiza o cache.
// Se a busca falhar e existir um catálogo anterior, ele é devolvido mesmo expirado.
func (c *CatalogCache) Refresh(ctx context.Context) (stickydomain.Catalog, error) {
	logrus.Debug("Buscando catálogo de produtos atualizado")

	catalog, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.value != nil {
			logrus.WithError(err).Warn("Falha ao atualizar catálogo de produtos, usando cache expirado")
			return c.value, nil
		}
		return nil, err
	}

	c.value = catalog
	c.expiresAt = c.now().Add(c.ttl)

	return catalog, nil
}

// Invalidate descarta o catálogo em cache
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = nil
	c.expiresAt = time.Time{}

	logrus.Info("Cache do catálogo de produtos limpo")
}

// ExpiresAt retorna a expiração do catálogo atual (zero se vazio)
func (c *CatalogCache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.expiresAt
}
