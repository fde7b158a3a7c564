package tracking

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rorado/colistrack/internal/cache"
	"github.com/rorado/colistrack/internal/cache/rediscache"
	"github.com/rorado/colistrack/internal/models"
)

type Repository interface {
	ReadTracking() ([]models.TrackingRecord, error)
}

// Service serves the client portal's tracking reads. Per-number lookups
// are cached as JSON with a TTL; the cache is best-effort and the store
// stays the source of truth.
type Service struct {
	repo       Repository
	cache      cache.BytesCache
	currentTTL time.Duration
}

func New(repo Repository, c cache.BytesCache, currentTTL time.Duration) *Service {
	return &Service{repo: repo, cache: c, currentTTL: currentTTL}
}

func (s *Service) List(ctx context.Context) ([]models.TrackingRecord, error) {
	return s.repo.ReadTracking()
}

// GetByNumber resolves one tracking record by its (case-insensitive)
// number. Cache errors count as misses.
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.TrackingRecord, bool, error) {
	key := strings.ToUpper(strings.TrimSpace(number))

	if s.cache != nil && s.currentTTL > 0 {
		b, ok, err := s.cache.Get(ctx, rediscache.TrackingCurrentKey(key))
		if err == nil && ok {
			var t models.TrackingRecord
			if json.Unmarshal(b, &t) == nil {
				return &t, true, nil
			}
		}
	}

	all, err := s.repo.ReadTracking()
	if err != nil {
		return nil, false, err
	}
	for i := range all {
		if all[i].TrackingNumber == key {
			if s.cache != nil && s.currentTTL > 0 {
				if b, err := json.Marshal(&all[i]); err == nil {
					_ = s.cache.Set(ctx, rediscache.TrackingCurrentKey(key), b, s.currentTTL)
				}
			}
			return &all[i], true, nil
		}
	}
	return nil, false, nil
}
