package bodylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/internal/users"
	"github.com/2beens/healthapi/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=bodylog_test

type bodyLogRepo interface {
	Add(ctx context.Context, b BodyLog) (*BodyLog, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*BodyLog, error)
	Latest(ctx context.Context, userID uuid.UUID) (*BodyLog, error)
	List(ctx context.Context, userID uuid.UUID) ([]BodyLog, error)
	Update(ctx context.Context, b *BodyLog) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type profileProvider interface {
	Get(ctx context.Context, userID uuid.UUID) (users.Profile, error)
	Invalidate(userID uuid.UUID)
}

type trainingCalories interface {
	CaloriesOnDate(ctx context.Context, userID uuid.UUID, date string) (float64, error)
}

type Service struct {
	repo     bodyLogRepo
	profiles profileProvider
	training trainingCalories
	NowFunc  func() time.Time
}

func NewService(repo bodyLogRepo, profiles profileProvider, training trainingCalories) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		training: training,
		NowFunc:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.NowFunc()
	date, err := pkg.DateOrToday(req.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidInput, err)
	}

	b := BodyLog{
		UserID:        userID,
		Date:          date,
		Weight:        req.Weight,
		Height:        req.Height,
		FatMass:       req.FatMass,
		FatPercentage: req.FatPercentage,
		MuscleMass:    req.MuscleMass,
		WaterMass:     req.WaterMass,
		CreatedAt:     now,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	if err := s.derive(ctx, &b, now); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("add body log: %w", err)
	}
	s.profiles.Invalidate(userID)

	span.SetAttributes(attribute.String("bodylog.id", added.ID.String()))
	return added, nil
}

// Update applies a partial update; unset fields keep their stored values and
// BMI/BMR are recomputed from the merged measurements.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bodylog.id", id.String()))

	if req.Empty() {
		return nil, ErrEmptyUpdate
	}

	b, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.apply(b)
	if err := b.validate(); err != nil {
		return nil, err
	}

	if err := s.derive(ctx, b, s.NowFunc()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	s.profiles.Invalidate(userID)

	return b, nil
}

func (s *Service) derive(ctx context.Context, b *BodyLog, now time.Time) error {
	profile, err := s.profiles.Get(ctx, b.UserID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	age := profile.Age(now)
	if !profile.AgeKnown(now) {
		log.Warnf("body log for user %s: age unknown, BMR is computed without the age term", b.UserID)
	}
	b.deriveMetrics(age, profile.Gender)
	return nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (_ []BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body logs: %w", err)
	}
	return logs, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.profiles.Invalidate(userID)
	return nil
}

// CaloriesOnDay adds the BMR of the latest body log to the calories burned in
// trainings on the given date (today when empty).
func (s *Service) CaloriesOnDay(ctx context.Context, userID uuid.UUID, date string) (_ *CaloriesOnDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodylog.calories-on-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date, err = pkg.DateOrToday(date, s.NowFunc())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidInput, err)
	}
	span.SetAttributes(attribute.String("date", date))

	latest, err := s.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBodyLogNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("latest body log: %w", err)
	}

	trainingKcal, err := s.training.CaloriesOnDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("training calories: %w", err)
	}

	return &CaloriesOnDay{
		Date:             date,
		BMR:              latest.BMR,
		TrainingCalories: trainingKcal,
		Total:            scoring.RoundTo(latest.BMR+trainingKcal, 2),
	}, nil
}
