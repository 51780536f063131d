package training

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/metrics"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/internal/users"
	"github.com/2beens/healthapi/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

const (
	// calories are stored whole on create and with two decimals after an update
	createCaloriesDecimals = 0
	updateCaloriesDecimals = 2

	exerciseScoreDecimals = 1
	maxNameLength         = 100
)

type trainingRepo interface {
	AddTraining(ctx context.Context, t Training) (*Training, error)
	GetTraining(ctx context.Context, userID, id uuid.UUID) (*Training, error)
	ListTrainings(ctx context.Context, userID uuid.UUID, date string) ([]Training, error)
	UpdateTraining(ctx context.Context, t *Training) error
	DeleteTraining(ctx context.Context, userID, id uuid.UUID) error
	TrainingTypes(ctx context.Context, userID uuid.UUID) ([]string, error)
	CaloriesOnDate(ctx context.Context, userID uuid.UUID, date string) (float64, error)

	AddExerciseLog(ctx context.Context, e ExerciseLog, order *int) (*ExerciseLog, error)
	GetExerciseLog(ctx context.Context, id uuid.UUID) (*ExerciseLog, error)
	UpdateExerciseLog(ctx context.Context, e *ExerciseLog) error
	UpdateExerciseLogStats(ctx context.Context, id uuid.UUID, fn func(e *ExerciseLog) error) (*ExerciseLog, error)
	DeleteExerciseLog(ctx context.Context, userID, id uuid.UUID) error

	AddSet(ctx context.Context, s SetLog, order *int) (*SetLog, error)
	GetSet(ctx context.Context, userID, id uuid.UUID) (*SetLog, error)
	UpdateSet(ctx context.Context, s *SetLog) error
	DeleteSet(ctx context.Context, userID, id uuid.UUID) error
}

type profileProvider interface {
	Get(ctx context.Context, userID uuid.UUID) (users.Profile, error)
}

type Service struct {
	repo           trainingRepo
	profiles       profileProvider
	estimator      scoring.CalorieEstimator
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewService(
	repo trainingRepo,
	profiles profileProvider,
	estimator scoring.CalorieEstimator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		estimator:      estimator,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func validateTraining(t *Training) error {
	if t.Type == "" {
		return fmt.Errorf("%w: training type is required", scoring.ErrInvalidInput)
	}
	if len(t.Type) > maxNameLength {
		return fmt.Errorf("%w: training type too long", scoring.ErrInvalidInput)
	}
	return scoring.ValidateEffort(t.effort())
}

// estimateCalories sets the burned calories from the user profile. An incomplete
// profile yields 0 and marks the calories as not estimated.
func (s *Service) estimateCalories(ctx context.Context, t *Training, decimals int) error {
	profile, err := s.profiles.Get(ctx, t.UserID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	athlete := profile.Athlete(s.NowFunc())
	estimated := athlete.Complete()
	t.CaloriesEstimated = &estimated
	if !estimated {
		log.Warnf("training for user %s: profile incomplete, calories not estimated", t.UserID)
		t.CaloriesBurned = 0
		return nil
	}

	t.CaloriesBurned = s.estimator.Estimate(athlete, t.effort(), decimals)
	s.metricsManager.HistCaloriesBurned.Observe(t.CaloriesBurned)
	return nil
}

func (s *Service) CreateTraining(ctx context.Context, userID uuid.UUID, req CreateTrainingRequest) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.NowFunc()
	date, err := pkg.DateOrToday(req.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidInput, err)
	}

	t := Training{
		UserID:       userID,
		Date:         date,
		Type:         strings.TrimSpace(req.Type),
		Notes:        req.Notes,
		AvgHeartRate: req.AvgHeartRate,
		Duration:     req.Duration,
		Pauses:       req.Pauses,
		PauseLength:  req.PauseLength,
		CreatedAt:    now,
	}
	if err := validateTraining(&t); err != nil {
		return nil, err
	}

	if err := s.estimateCalories(ctx, &t, createCaloriesDecimals); err != nil {
		return nil, err
	}

	added, err := s.repo.AddTraining(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("add training: %w", err)
	}
	s.metricsManager.CounterTrainings.Inc()

	span.SetAttributes(attribute.String("training.id", added.ID.String()))
	span.SetAttributes(attribute.Float64("calories", added.CaloriesBurned))
	return added, nil
}

// UpdateTraining merges the partial update into the stored training and
// re-estimates the burned calories.
func (s *Service) UpdateTraining(ctx context.Context, userID, id uuid.UUID, req UpdateTrainingRequest) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", id.String()))

	if req.Empty() {
		return nil, ErrEmptyUpdate
	}

	t, err := s.repo.GetTraining(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.apply(t)
	if err := validateTraining(t); err != nil {
		return nil, err
	}

	if err := s.estimateCalories(ctx, t, updateCaloriesDecimals); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTraining(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTraining(ctx context.Context, userID, id uuid.UUID) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetTraining(ctx, userID, id)
}

// ListTrainings lists the user's trainings, optionally only those on date.
func (s *Service) ListTrainings(ctx context.Context, userID uuid.UUID, date string) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date != "" {
		if _, err := pkg.ParseDate(date); err != nil {
			return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidInput, err)
		}
	}

	trainings, err := s.repo.ListTrainings(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	return trainings, nil
}

func (s *Service) DeleteTraining(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteTraining(ctx, userID, id)
}

func (s *Service) TrainingTypes(ctx context.Context, userID uuid.UUID) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.types")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.TrainingTypes(ctx, userID)
}

func validateExerciseName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: exercise name is required", scoring.ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: exercise name too long", scoring.ErrInvalidInput)
	}
	return nil
}

func validateOrder(order *int) error {
	if order != nil && *order < 0 {
		return fmt.Errorf("%w: order must not be negative", scoring.ErrInvalidInput)
	}
	return nil
}

func (s *Service) CreateExerciseLog(ctx context.Context, userID uuid.UUID, req CreateExerciseLogRequest) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise-log.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := strings.TrimSpace(req.Name)
	if err := validateExerciseName(name); err != nil {
		return nil, err
	}
	if err := validateOrder(req.Order); err != nil {
		return nil, err
	}

	// the training has to exist and belong to the user
	if _, err := s.repo.GetTraining(ctx, userID, req.TrainingID); err != nil {
		return nil, err
	}

	added, err := s.repo.AddExerciseLog(ctx, ExerciseLog{
		UserID:     userID,
		TrainingID: req.TrainingID,
		Name:       name,
		Notes:      req.Notes,
		CreatedAt:  s.NowFunc(),
	}, req.Order)
	if err != nil {
		return nil, fmt.Errorf("add exercise log: %w", err)
	}

	span.SetAttributes(attribute.String("exercise-log.id", added.ID.String()))
	return added, nil
}

// ownExerciseLog returns the exercise log of the user, hiding logs of others.
func (s *Service) ownExerciseLog(ctx context.Context, userID, id uuid.UUID) (*ExerciseLog, error) {
	e, err := s.repo.GetExerciseLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, ErrExerciseLogNotFound
	}
	return e, nil
}

func (s *Service) GetExerciseLog(ctx context.Context, userID, id uuid.UUID) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise-log.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.ownExerciseLog(ctx, userID, id)
}

func (s *Service) UpdateExerciseLog(ctx context.Context, userID, id uuid.UUID, req UpdateExerciseLogRequest) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise-log.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", id.String()))

	if req.Empty() {
		return nil, ErrEmptyUpdate
	}
	if err := validateOrder(req.Order); err != nil {
		return nil, err
	}

	e, err := s.ownExerciseLog(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateExerciseName(name); err != nil {
			return nil, err
		}
		e.Name = name
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}
	if req.Order != nil {
		e.Order = *req.Order
	}

	if err := s.repo.UpdateExerciseLog(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteExerciseLog(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise-log.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteExerciseLog(ctx, userID, id)
}

// CreateSet adds a set to an exercise log of the user and refreshes the log's
// averages and score. Adding to another user's log is forbidden.
func (s *Service) CreateSet(ctx context.Context, userID uuid.UUID, req CreateSetRequest) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.set.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.RepUnit == "" {
		req.RepUnit = scoring.RepUnitReps
	}
	set := SetLog{
		UserID:        userID,
		ExerciseLogID: req.ExerciseLogID,
		Type:          req.Type,
		Reps:          req.Reps,
		Weight:        req.Weight,
		RepUnit:       req.RepUnit,
		CreatedAt:     s.NowFunc(),
	}
	if err := scoring.ValidateSet(set.scoringSet()); err != nil {
		return nil, err
	}
	if err := validateOrder(req.Order); err != nil {
		return nil, err
	}

	e, err := s.repo.GetExerciseLog(ctx, req.ExerciseLogID)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, fmt.Errorf("%w: exercise log %s", auth.ErrForbidden, e.ID)
	}

	added, err := s.repo.AddSet(ctx, set, req.Order)
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	s.metricsManager.CounterSets.Inc()

	if err := s.refreshExerciseLog(ctx, userID, added.ExerciseLogID); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("set.id", added.ID.String()))
	return added, nil
}

func (s *Service) GetSet(ctx context.Context, userID, id uuid.UUID) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.set.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetSet(ctx, userID, id)
}

func (s *Service) UpdateSet(ctx context.Context, userID, id uuid.UUID, req UpdateSetRequest) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.set.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id.String()))

	if req.Empty() {
		return nil, ErrEmptyUpdate
	}
	if err := validateOrder(req.Order); err != nil {
		return nil, err
	}

	set, err := s.repo.GetSet(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.apply(set)
	if err := scoring.ValidateSet(set.scoringSet()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSet(ctx, set); err != nil {
		return nil, err
	}

	if err := s.refreshExerciseLog(ctx, userID, set.ExerciseLogID); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Service) DeleteSet(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.set.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set, err := s.repo.GetSet(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSet(ctx, userID, id); err != nil {
		return err
	}

	return s.refreshExerciseLog(ctx, userID, set.ExerciseLogID)
}

// refreshExerciseLog recomputes the work set averages and the strength score
// of the exercise log from its current sets, with the log row locked.
func (s *Service) refreshExerciseLog(ctx context.Context, userID, exerciseLogID uuid.UUID) error {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	e, err := s.repo.UpdateExerciseLogStats(ctx, exerciseLogID, func(e *ExerciseLog) error {
		session := e.Session()
		e.AvgWeight, e.AvgReps = scoring.SessionAverages(session.Sets)
		e.Score = scoring.RoundTo(scoring.ScoreSession(session, profile.WeightKg).Score, exerciseScoreDecimals)
		return nil
	})
	if err != nil {
		return fmt.Errorf("update exercise log stats: %w", err)
	}

	log.Tracef("exercise log %s refreshed: score %.1f, avg weight %.1f, avg reps %.1f",
		e.ID, e.Score, e.AvgWeight, e.AvgReps)
	return nil
}

// CaloriesOnDate sums the calories burned in the user's trainings on date.
func (s *Service) CaloriesOnDate(ctx context.Context, userID uuid.UUID, date string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.calories-on-date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.CaloriesOnDate(ctx, userID, date)
}
