package training

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/healthapi/internal/scoring"
)

var (
	ErrTrainingNotFound    = errors.New("training not found")
	ErrExerciseLogNotFound = errors.New("exercise log not found")
	ErrSetNotFound         = errors.New("set not found")
	ErrEmptyUpdate         = errors.New("no fields to update")
)

type Training struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Date           string    `json:"date"`
	Type           string    `json:"type"`
	Notes          *string   `json:"notes,omitempty"`
	AvgHeartRate   int       `json:"avgHeartRate"`
	Duration       int       `json:"duration"`
	Pauses         int       `json:"pauses"`
	PauseLength    float64   `json:"pauseLength"`
	CaloriesBurned float64   `json:"caloriesBurned"`
	// CaloriesEstimated is only set on create and update; false means the
	// profile lacked age or weight and CaloriesBurned is a 0 placeholder.
	CaloriesEstimated *bool         `json:"caloriesEstimated,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	Exercises         []ExerciseLog `json:"exercises"`
}

func (t *Training) effort() scoring.Effort {
	return scoring.Effort{
		AvgHeartRate:       t.AvgHeartRate,
		DurationMinutes:    float64(t.Duration),
		Pauses:             t.Pauses,
		PauseLengthMinutes: t.PauseLength,
		TrainingType:       t.Type,
	}
}

type ExerciseLog struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	TrainingID uuid.UUID `json:"trainingId"`
	Name       string    `json:"name"`
	Notes      *string   `json:"notes,omitempty"`
	Order      int       `json:"order"`
	Score      float64   `json:"score"`
	AvgWeight  float64   `json:"avgWeight"`
	AvgReps    float64   `json:"avgReps"`
	CreatedAt  time.Time `json:"createdAt"`
	Sets       []SetLog  `json:"sets"`
}

// Session converts the log into the scoring engine's view of it.
func (e *ExerciseLog) Session() scoring.Session {
	sets := make([]scoring.Set, 0, len(e.Sets))
	for _, s := range e.Sets {
		sets = append(sets, s.scoringSet())
	}
	return scoring.Session{
		ID:        e.ID.String(),
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		Sets:      sets,
	}
}

type SetLog struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	ExerciseLogID uuid.UUID       `json:"exerciseLogId"`
	Type          scoring.SetType `json:"type"`
	Reps          int             `json:"reps"`
	Weight        float64         `json:"weight"`
	RepUnit       scoring.RepUnit `json:"repUnit"`
	Order         int             `json:"order"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (s SetLog) scoringSet() scoring.Set {
	return scoring.Set{
		Weight:  s.Weight,
		Reps:    s.Reps,
		Type:    s.Type,
		RepUnit: s.RepUnit,
	}
}

type CreateTrainingRequest struct {
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	Notes        *string `json:"notes"`
	AvgHeartRate int     `json:"avgHeartRate"`
	Duration     int     `json:"duration"`
	Pauses       int     `json:"pauses"`
	PauseLength  float64 `json:"pauseLength"`
}

// UpdateTrainingRequest carries a partial update. A nil field keeps the stored value.
type UpdateTrainingRequest struct {
	Type         *string  `json:"type"`
	Notes        *string  `json:"notes"`
	AvgHeartRate *int     `json:"avgHeartRate"`
	Duration     *int     `json:"duration"`
	Pauses       *int     `json:"pauses"`
	PauseLength  *float64 `json:"pauseLength"`
}

func (u UpdateTrainingRequest) Empty() bool {
	return u.Type == nil && u.Notes == nil && u.AvgHeartRate == nil &&
		u.Duration == nil && u.Pauses == nil && u.PauseLength == nil
}

func (u UpdateTrainingRequest) apply(t *Training) {
	if u.Type != nil {
		t.Type = strings.TrimSpace(*u.Type)
	}
	if u.Notes != nil {
		t.Notes = u.Notes
	}
	if u.AvgHeartRate != nil {
		t.AvgHeartRate = *u.AvgHeartRate
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Pauses != nil {
		t.Pauses = *u.Pauses
	}
	if u.PauseLength != nil {
		t.PauseLength = *u.PauseLength
	}
}

type CreateExerciseLogRequest struct {
	TrainingID uuid.UUID `json:"trainingId"`
	Name       string    `json:"name"`
	Notes      *string   `json:"notes"`
	// Order defaults to the next position within the training.
	Order *int `json:"order"`
}

type UpdateExerciseLogRequest struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
	Order *int    `json:"order"`
}

func (u UpdateExerciseLogRequest) Empty() bool {
	return u.Name == nil && u.Notes == nil && u.Order == nil
}

type CreateSetRequest struct {
	ExerciseLogID uuid.UUID       `json:"exerciseLogId"`
	Type          scoring.SetType `json:"type"`
	Reps          int             `json:"reps"`
	Weight        float64         `json:"weight"`
	RepUnit       scoring.RepUnit `json:"repUnit"`
	// Order defaults to the next position within the exercise log.
	Order *int `json:"order"`
}

type UpdateSetRequest struct {
	Type    *scoring.SetType `json:"type"`
	Reps    *int             `json:"reps"`
	Weight  *float64         `json:"weight"`
	RepUnit *scoring.RepUnit `json:"repUnit"`
	Order   *int             `json:"order"`
}

func (u UpdateSetRequest) Empty() bool {
	return u.Type == nil && u.Reps == nil && u.Weight == nil && u.RepUnit == nil && u.Order == nil
}

func (u UpdateSetRequest) apply(s *SetLog) {
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.Reps != nil {
		s.Reps = *u.Reps
	}
	if u.Weight != nil {
		s.Weight = *u.Weight
	}
	if u.RepUnit != nil {
		s.RepUnit = *u.RepUnit
	}
	if u.Order != nil {
		s.Order = *u.Order
	}
}
