package scoring

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	MinHeartRate = 30
	MaxHeartRate = 220

	MinDurationMinutes = 1
	MaxDurationMinutes = 600

	MaxReps        = 100
	MaxTimedReps   = 3600
	MaxSetWeightKg = 1000
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func ValidateEffort(e Effort) error {
	if e.AvgHeartRate < MinHeartRate || e.AvgHeartRate > MaxHeartRate {
		return invalid("heart rate must be in [%d, %d]", MinHeartRate, MaxHeartRate)
	}
	if e.DurationMinutes < MinDurationMinutes || e.DurationMinutes > MaxDurationMinutes {
		return invalid("duration must be in [%d, %d] minutes", MinDurationMinutes, MaxDurationMinutes)
	}
	if e.Pauses < 0 {
		return invalid("pauses must not be negative")
	}
	if e.PauseLengthMinutes < 0 {
		return invalid("pause length must not be negative")
	}
	return nil
}

func ValidateSet(s Set) error {
	switch s.Type {
	case SetTypeWork, SetTypeWarmup:
	default:
		return invalid("unknown set type %q", s.Type)
	}

	maxReps := MaxReps
	switch s.RepUnit {
	case RepUnitReps:
	case RepUnitSeconds:
		maxReps = MaxTimedReps
	default:
		return invalid("unknown rep unit %q", s.RepUnit)
	}

	if s.Reps < 1 || s.Reps > maxReps {
		return invalid("reps must be in [1, %d]", maxReps)
	}
	if s.Weight < 0 || s.Weight > MaxSetWeightKg {
		return invalid("weight must be in [0, %d]", MaxSetWeightKg)
	}
	return nil
}
