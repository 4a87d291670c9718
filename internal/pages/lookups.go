package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/patrickmn/go-cache"
)

type lookupsAPI interface {
	ListJobCategories(ctx context.Context) ([]ats.JobCategory, error)
	ListHiringManagers(ctx context.Context, companyID int) ([]ats.HiringManager, error)
}

// CachedLookups serves the wizard's dropdown data. Categories and hiring
// managers change rarely, so each lookup is fetched once and reused for an
// hour.
type CachedLookups struct {
	api   lookupsAPI
	cache *cache.Cache
}

func NewCachedLookups(api lookupsAPI) *CachedLookups {
	return &CachedLookups{
		api:   api,
		cache: cache.New(1*time.Hour, 2*time.Hour),
	}
}

func (c *CachedLookups) JobCategories(ctx context.Context) ([]ats.JobCategory, error) {

	if cached, ok := c.cache.Get("job-categories"); ok {
		return cached.([]ats.JobCategory), nil
	}

	categories, err := c.api.ListJobCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set("job-categories", categories, cache.DefaultExpiration)
	return categories, nil
}

func (c *CachedLookups) HiringManagers(ctx context.Context, companyID int) ([]ats.HiringManager, error) {

	key := fmt.Sprintf("hiring-managers:%d", companyID)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]ats.HiringManager), nil
	}

	managers, err := c.api.ListHiringManagers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, managers, cache.DefaultExpiration)
	return managers, nil
}
