package calibration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid calibration input")

// Key identifies the calibration of one exercise for one user.
type Key struct {
	UserID   uuid.UUID
	Exercise string
}

func (k Key) String() string {
	return k.UserID.String() + "||" + k.Exercise
}

// State is the last scored performance and the factor it was scored with.
type State struct {
	LastWeight float64   `json:"lastWeight"`
	LastReps   float64   `json:"lastReps"`
	Factor     float64   `json:"factor"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type HistoryEntry struct {
	Weight    float64   `json:"weight"`
	Reps      float64   `json:"reps"`
	Factor    float64   `json:"factor"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e HistoryEntry) sameTriple(o HistoryEntry) bool {
	return e.Weight == o.Weight && e.Reps == o.Reps && e.Factor == o.Factor
}

// Tx gives exclusive access to the calibration data of a single key.
type Tx interface {
	// State returns nil when the key was never scored.
	State(ctx context.Context) (*State, error)
	// LatestFactorForWeight returns the factor of the most recent history
	// entry recorded with exactly this weight.
	LatestFactorForWeight(ctx context.Context, weight float64) (float64, bool, error)
	// LowestWeightEntry returns the history entry with the lowest weight,
	// the most recent one on ties, or nil for an empty history.
	LowestWeightEntry(ctx context.Context) (*HistoryEntry, error)
	SaveState(ctx context.Context, state State) error
	// AppendHistory stores the entry unless its (weight, reps, factor)
	// triple is already recorded, and reports whether it was stored.
	AppendHistory(ctx context.Context, entry HistoryEntry) (bool, error)
}

// Store serializes updates per key: fn never runs concurrently for the same
// key, and its writes are applied only when it returns nil.
type Store interface {
	Update(ctx context.Context, key Key, fn func(tx Tx) error) error
	History(ctx context.Context, key Key) ([]HistoryEntry, error)
}
