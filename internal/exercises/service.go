package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/calibration"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/metrics"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/internal/users"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

const maxNameLength = 100

type exercisesRepo interface {
	Names(ctx context.Context, userID uuid.UUID) ([]string, error)
	Add(ctx context.Context, e Exercise) error
	Get(ctx context.Context, userID uuid.UUID, name string) (*Exercise, error)
	Rename(ctx context.Context, userID uuid.UUID, name, newName string) error
	Delete(ctx context.Context, userID uuid.UUID, name string) error
	Sessions(ctx context.Context, userID uuid.UUID, name string) ([]scoring.Session, error)
	LogStats(ctx context.Context, exerciseLogID uuid.UUID) (*LogStats, error)
}

type profileProvider interface {
	Get(ctx context.Context, userID uuid.UUID) (users.Profile, error)
}

type scoreCalibrator interface {
	Score(ctx context.Context, userID uuid.UUID, exercise string, avgReps, avgWeight float64) (int, error)
	History(ctx context.Context, userID uuid.UUID, exercise string) ([]calibration.HistoryEntry, error)
}

type Service struct {
	repo           exercisesRepo
	profiles       profileProvider
	calibrator     scoreCalibrator
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewService(
	repo exercisesRepo,
	profiles profileProvider,
	calibrator scoreCalibrator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		calibrator:     calibrator,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: exercise name is required", scoring.ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return "", fmt.Errorf("%w: exercise name too long", scoring.ErrInvalidInput)
	}
	return name, nil
}

func (s *Service) Names(ctx context.Context, userID uuid.UUID) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.names")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Names(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	e := Exercise{
		UserID:    userID,
		Name:      name,
		CreatedAt: s.NowFunc(),
		Logs:      []LogSummary{},
	}
	if err := s.repo.Add(ctx, e); err != nil {
		return nil, err
	}

	log.Debugf("exercise [%s] added for user %s", name, userID)
	return &e, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, userID, name)
}

func (s *Service) Rename(ctx context.Context, userID uuid.UUID, name string, req RenameRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	newName, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if newName != name {
		if err := s.repo.Rename(ctx, userID, name, newName); err != nil {
			return nil, err
		}
	}

	return s.repo.Get(ctx, userID, newName)
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Delete(ctx, userID, name)
}

// Progression scores every logged session of the exercise against the
// user's current body weight. It fails with scoring.ErrNoSessions when the
// exercise was never logged.
func (s *Service) Progression(ctx context.Context, userID uuid.UUID, name string) (_ *Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))

	sessions, err := s.repo.Sessions(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	progress, err := scoring.ComputeProgression(sessions, profile.WeightKg)
	if err != nil {
		return nil, err
	}

	return &Progression{
		Exercise: name,
		Sessions: progress,
	}, nil
}

func (s *Service) Scores(ctx context.Context, userID uuid.UUID, name string) (_ []calibration.HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.scores")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.calibrator.History(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	if history == nil {
		history = []calibration.HistoryEntry{}
	}
	return history, nil
}

// Score runs the calibrated exercise score for the averages of one of the
// user's exercise logs.
func (s *Service) Score(ctx context.Context, userID uuid.UUID, req ScoreRequest) (_ *ScoreResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.score")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", req.ExerciseLogID.String()))

	if req.ExerciseLogID == uuid.Nil {
		return nil, fmt.Errorf("%w: exercise log id is required", scoring.ErrInvalidInput)
	}

	stats, err := s.repo.LogStats(ctx, req.ExerciseLogID)
	if err != nil {
		return nil, err
	}
	if stats.UserID != userID {
		return nil, fmt.Errorf("%w: exercise log %s", auth.ErrForbidden, stats.ID)
	}

	score, err := s.calibrator.Score(ctx, userID, stats.Name, stats.AvgReps, stats.AvgWeight)
	if err != nil {
		if errors.Is(err, calibration.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("calibrate score: %w", err)
	}
	s.metricsManager.CounterExerciseScores.Inc()

	return &ScoreResponse{
		ExerciseLogID: stats.ID,
		Exercise:      stats.Name,
		Score:         score,
		AvgWeight:     stats.AvgWeight,
		AvgReps:       stats.AvgReps,
	}, nil
}
