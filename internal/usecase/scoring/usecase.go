package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creditflow-backend/internal/domain/loan"
	domainProfile "creditflow-backend/internal/domain/profile"
	"creditflow-backend/internal/domain/scoring"

	"gorm.io/gorm"
)

// Cache is the assessment result cache. Implementations may lose entries at
// any time; correctness never depends on a hit.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Usecase struct {
	profiles domainProfile.Repository
	cache    Cache // nil disables caching
	ttl      time.Duration
}

func NewUsecase(profiles domainProfile.Repository, cache Cache, ttl time.Duration) *Usecase {
	return &Usecase{profiles: profiles, cache: cache, ttl: ttl}
}

// Assess runs the comprehensive risk assessment for a borrower and a
// candidate amount. It is read-only and may be called by anyone, any number
// of times, independent of any application's lifecycle state.
//
// The cache key carries the profile's LastUpdated stamp, so a profile write
// naturally invalidates every cached assessment for that borrower.
func (u *Usecase) Assess(ctx context.Context, borrowerID string, requestedAmount int64) (*scoring.Assessment, error) {
	if requestedAmount <= 0 {
		return nil, loan.ErrInvalidAmount
	}
	p, err := u.profiles.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProfile.ErrNotFound
		}
		return nil, err
	}

	key := assessKey(borrowerID, requestedAmount, p.LastUpdated)
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, key); ok {
			var cached scoring.Assessment
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	a := scoring.Assess(p.ScoringInputs(), requestedAmount)

	if u.cache != nil {
		if raw, err := json.Marshal(a); err == nil {
			_ = u.cache.Set(ctx, key, string(raw), u.ttl)
		}
	}
	return &a, nil
}

func assessKey(borrowerID string, amount int64, lastUpdated time.Time) string {
	return fmt.Sprintf("risk:%s:%d:%d", borrowerID, amount, lastUpdated.UnixNano())
}
