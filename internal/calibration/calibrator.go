package calibration

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/telemetry/tracing"
)

const defaultFactor = 1.0

// Calibrator scores an exercise performance relative to the user's own
// history, rescaling the reps/weight ratio whenever the weight changes.
type Calibrator struct {
	store Store
	// injectable clock (for unit tests)
	NowFunc func() time.Time
}

func NewCalibrator(store Store) *Calibrator {
	return &Calibrator{
		store:   store,
		NowFunc: time.Now,
	}
}

// Score calibrates the factor for (userID, exercise), persists the new state
// and history entry, and returns the exercise score.
func (c *Calibrator) Score(
	ctx context.Context,
	userID uuid.UUID,
	exercise string,
	avgReps, avgWeight float64,
) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calibration.score")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("exercise", exercise))

	if !(avgReps > 0) || !(avgWeight >= 0) || math.IsInf(avgReps, 0) || math.IsInf(avgWeight, 0) {
		return 0, fmt.Errorf("%w: avg reps %v, avg weight %v", ErrInvalidInput, avgReps, avgWeight)
	}

	key := Key{UserID: userID, Exercise: exercise}

	var score int
	err = c.store.Update(ctx, key, func(tx Tx) error {
		prev, err := tx.State(ctx)
		if err != nil {
			return fmt.Errorf("get state: %w", err)
		}

		factor, err := nextFactor(ctx, tx, prev, avgReps, avgWeight)
		if err != nil {
			return err
		}

		score = exerciseScore(factor, avgReps, avgWeight)
		now := c.NowFunc()

		if err := tx.SaveState(ctx, State{
			LastWeight: avgWeight,
			LastReps:   avgReps,
			Factor:     factor,
			UpdatedAt:  now,
		}); err != nil {
			return fmt.Errorf("save state: %w", err)
		}

		appended, err := tx.AppendHistory(ctx, HistoryEntry{
			Weight:    avgWeight,
			Reps:      avgReps,
			Factor:    factor,
			Score:     score,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		span.SetAttributes(attribute.Float64("factor", factor))
		span.SetAttributes(attribute.Bool("history.appended", appended))
		log.Tracef("calibration [%s]: factor %f, score %d, history appended: %t", key, factor, score, appended)

		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("score", score))
	return score, nil
}

func (c *Calibrator) History(ctx context.Context, userID uuid.UUID, exercise string) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calibration.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.store.History(ctx, Key{UserID: userID, Exercise: exercise})
}

func nextFactor(ctx context.Context, tx Tx, prev *State, avgReps, avgWeight float64) (float64, error) {
	if prev == nil {
		return defaultFactor, nil
	}

	prevFactor := prev.Factor
	if !validFactor(prevFactor) {
		prevFactor = defaultFactor
	}

	var candidate float64
	switch {
	case avgWeight < prev.LastWeight:
		factor, found, err := tx.LatestFactorForWeight(ctx, avgWeight)
		if err != nil {
			return 0, fmt.Errorf("get factor for weight: %w", err)
		}
		if found {
			candidate = factor
			break
		}

		lowest, err := tx.LowestWeightEntry(ctx)
		if err != nil {
			return 0, fmt.Errorf("get lowest weight entry: %w", err)
		}
		if lowest != nil {
			candidate = (avgWeight * lowest.Reps) / (avgReps * lowest.Weight)
		}
	case avgWeight > prev.LastWeight:
		candidate = (avgWeight * prev.LastReps) / (avgReps * prev.LastWeight)
	default:
		candidate = prevFactor
	}

	if !validFactor(candidate) {
		return prevFactor, nil
	}
	return candidate, nil
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// exerciseScore is round(factor * reps / weight * 100), 0 for a zero weight.
func exerciseScore(factor, avgReps, avgWeight float64) int {
	if avgWeight <= 0 {
		return 0
	}
	score := math.Round(factor * avgReps / avgWeight * 100)
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(score)
}
