package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/telemetry/tracing"
)

const profileCacheTTLSeconds = 10 * 60

type userGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*User, error)
}

// WeightSource provides the most recent body weight of a user.
type WeightSource interface {
	LatestWeight(ctx context.Context, userID uuid.UUID) (weightKg float64, found bool, err error)
}

// ProfileService assembles user profiles from the users table and the latest body log,
// caching them in memory until invalidated.
type ProfileService struct {
	users   userGetter
	weights WeightSource
	cache   *freecache.Cache
}

func NewProfileService(users userGetter, weights WeightSource, cacheSizeMB int) *ProfileService {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &ProfileService{
		users:   users,
		weights: weights,
		cache:   freecache.NewCache(cacheSizeMB * 1024 * 1024),
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (_ Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if cached, err := s.cache.Get(userID[:]); err == nil {
		var p Profile
		if err := json.Unmarshal(cached, &p); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return p, nil
		}
		log.Warnf("profile cache: corrupt entry for user %s", userID)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("profile cache get: %s", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	weight, _, err := s.weights.LatestWeight(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("latest weight: %w", err)
	}

	p := Profile{
		UserID:    userID,
		BirthYear: user.BirthYear,
		Gender:    user.Gender,
		WeightKg:  weight,
	}

	if encoded, err := json.Marshal(p); err == nil {
		if err := s.cache.Set(userID[:], encoded, profileCacheTTLSeconds); err != nil {
			log.Errorf("profile cache set: %s", err)
		}
	}

	return p, nil
}

// Invalidate drops the cached profile; called whenever the user's body logs change.
func (s *ProfileService) Invalidate(userID uuid.UUID) {
	s.cache.Del(userID[:])
}
