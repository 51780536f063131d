package exercises

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/healthapi/internal/scoring"
)

var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseExists      = errors.New("exercise already exists")
	ErrExerciseLogNotFound = errors.New("exercise log not found")
)

// Exercise is an entry of the user's exercise catalog.
type Exercise struct {
	UserID    uuid.UUID    `json:"userId"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Logs      []LogSummary `json:"logs"`
}

// LogSummary is one logged occurrence of an exercise, without its sets.
type LogSummary struct {
	ID         uuid.UUID `json:"id"`
	TrainingID uuid.UUID `json:"trainingId"`
	Date       string    `json:"date"`
	Score      float64   `json:"score"`
	AvgWeight  float64   `json:"avgWeight"`
	AvgReps    float64   `json:"avgReps"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LogStats is what scoring an exercise log needs to know about it.
type LogStats struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	AvgWeight float64
	AvgReps   float64
}

type Progression struct {
	Exercise string                    `json:"exercise"`
	Sessions []scoring.SessionProgress `json:"sessions"`
}

type CreateRequest struct {
	Name string `json:"name"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type ScoreRequest struct {
	ExerciseLogID uuid.UUID `json:"exerciseLogId"`
}

type ScoreResponse struct {
	ExerciseLogID uuid.UUID `json:"exerciseLogId"`
	Exercise      string    `json:"exercise"`
	Score         int       `json:"score"`
	AvgWeight     float64   `json:"avgWeight"`
	AvgReps       float64   `json:"avgReps"`
}
