package scoring

import "math"

const (
	DefaultCapReps     = 20
	TimedCapReps       = 120
	DefaultWeightPower = 1.6
)

type SetType string

const (
	SetTypeWork   SetType = "Work"
	SetTypeWarmup SetType = "Warmup"
)

type RepUnit string

const (
	RepUnitReps    RepUnit = "reps"
	RepUnitSeconds RepUnit = "s"
)

type Set struct {
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
	Type    SetType `json:"type"`
	RepUnit RepUnit `json:"repUnit"`
}

func (s Set) IsWarmup() bool {
	return s.Type == SetTypeWarmup
}

// ScoreOptions tunes ScoreSets. Zero CapReps and WeightPower fall back to
// the defaults, zero DurationMinutes and BodyweightKg mean "unknown".
type ScoreOptions struct {
	CapReps         int
	WeightPower     float64
	DurationMinutes float64
	BodyweightKg    float64
}

type ScoreResult struct {
	Score    float64 `json:"score"`
	Density  float64 `json:"density"`
	Relative float64 `json:"relative"`
	OneRM    float64 `json:"oneRM"`
}

// EstimateOneRM is the Epley estimate: weight * (1 + reps/30).
func EstimateOneRM(weight float64, reps int) float64 {
	if reps < 0 {
		reps = 0
	}
	return weight * (1 + float64(reps)/30)
}

// ScoreSets computes the composite strength score of a list of sets.
// Every set feeds the one rep max estimate, only work sets add to the score.
func ScoreSets(sets []Set, opts ScoreOptions) ScoreResult {
	if len(sets) == 0 {
		return ScoreResult{}
	}

	capReps := opts.CapReps
	if capReps <= 0 {
		capReps = DefaultCapReps
	}
	weightPower := opts.WeightPower
	if weightPower == 0 {
		weightPower = DefaultWeightPower
	}

	oneRM := 0.0
	for _, s := range sets {
		if est := EstimateOneRM(s.Weight, s.Reps); est > oneRM {
			oneRM = est
		}
	}

	score := 0.0
	for _, s := range sets {
		if s.IsWarmup() {
			continue
		}

		effectiveReps := min(max(s.Reps, 0), capReps)
		if effectiveReps == 0 {
			continue
		}

		relativeIntensity := 0.0
		if oneRM > 0 {
			relativeIntensity = s.Weight / oneRM
		}
		if relativeIntensity <= 0 {
			continue
		}

		contribution := float64(effectiveReps) * s.Weight * math.Pow(relativeIntensity, weightPower)
		if isFinite(contribution) && contribution > 0 {
			score += contribution
		}
	}

	res := ScoreResult{
		Score: score,
		OneRM: oneRM,
	}
	if opts.DurationMinutes > 0 {
		res.Density = score / opts.DurationMinutes
	}
	if opts.BodyweightKg > 0 {
		res.Relative = score / opts.BodyweightKg
	}

	return res
}
