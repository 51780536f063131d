package scoring

import (
	"errors"
	"sort"
	"time"
)

var ErrNoSessions = errors.New("no sessions for exercise")

// Session is a single logged exercise with its sets.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Sets      []Set     `json:"sets"`
}

// IsTimed reports whether the session sets are measured in seconds.
// The first set decides for the whole session.
func (s Session) IsTimed() bool {
	return len(s.Sets) > 0 && s.Sets[0].RepUnit == RepUnitSeconds
}

type SessionProgress struct {
	Session   Session `json:"session"`
	Score     float64 `json:"score"`
	AvgWeight float64 `json:"avgWeight"`
	AvgReps   float64 `json:"avgReps"`
}

// SessionAverages returns the average weight and reps of the work sets,
// rounded to one decimal.
func SessionAverages(sets []Set) (avgWeight, avgReps float64) {
	var totalWeight float64
	var totalReps, count int
	for _, s := range sets {
		if s.IsWarmup() {
			continue
		}
		totalWeight += s.Weight
		totalReps += s.Reps
		count++
	}

	divisor := float64(max(count, 1))
	return RoundTo(totalWeight/divisor, 1), RoundTo(float64(totalReps)/divisor, 1)
}

// ScoreSession scores one session the way progression does.
func ScoreSession(s Session, bodyweightKg float64) ScoreResult {
	opts := ScoreOptions{BodyweightKg: bodyweightKg}
	if s.IsTimed() {
		opts.CapReps = TimedCapReps
	}
	return ScoreSets(s.Sets, opts)
}

// ComputeProgression scores every session and returns them most recent first,
// with scores rounded to whole numbers.
func ComputeProgression(sessions []Session, bodyweightKg float64) ([]SessionProgress, error) {
	return ComputeProgressionRounded(sessions, bodyweightKg, 0)
}

func ComputeProgressionRounded(sessions []Session, bodyweightKg float64, scoreDecimals int) ([]SessionProgress, error) {
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}

	progress := make([]SessionProgress, 0, len(sessions))
	for _, s := range sessions {
		avgWeight, avgReps := SessionAverages(s.Sets)
		res := ScoreSession(s, bodyweightKg)
		progress = append(progress, SessionProgress{
			Session:   s,
			Score:     RoundTo(res.Score, scoreDecimals),
			AvgWeight: avgWeight,
			AvgReps:   avgReps,
		})
	}

	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].Session.CreatedAt.After(progress[j].Session.CreatedAt)
	})

	return progress, nil
}
