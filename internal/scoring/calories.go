package scoring

import (
	"fmt"
	"math"
	"strings"
)

// PassiveCaloriesFactor scales the active burn rate for the time spent in pauses.
const PassiveCaloriesFactor = 0.7

// UnknownAge marks an athlete without a usable birth year. Age 0 is a valid
// age for someone born this year.
const UnknownAge = -1

// Athlete holds what calorie estimation needs to know about the user.
type Athlete struct {
	Age      int
	Gender   Gender
	WeightKg float64
}

// Complete reports whether age and weight are known. Without them every
// estimator returns 0.
func (a Athlete) Complete() bool {
	return a.Age >= 0 && a.WeightKg > 0
}

// Effort describes a single training session.
type Effort struct {
	AvgHeartRate       int
	DurationMinutes    float64
	Pauses             int
	PauseLengthMinutes float64
	TrainingType       string
}

func (e Effort) PauseMinutes() float64 {
	return float64(e.Pauses) * e.PauseLengthMinutes
}

// EstimateCaloriesHR estimates burned kcal from the average heart rate using
// the gender specific regression. Pauses burn at PassiveCaloriesFactor of the
// active rate. The result is never negative and is not rounded.
func EstimateCaloriesHR(a Athlete, e Effort) float64 {
	if !a.Complete() {
		return 0
	}

	hr := float64(e.AvgHeartRate)
	age := float64(a.Age)

	var perMinute float64
	switch a.Gender {
	case GenderMale:
		perMinute = (-55.0969 + 0.6309*hr + 0.1988*a.WeightKg + 0.2017*age) / 4.184
	case GenderFemale:
		perMinute = (-20.4022 + 0.4472*hr - 0.1263*a.WeightKg + 0.074*age) / 4.184
	default:
		return 0
	}

	pauseMinutes := e.PauseMinutes()
	activeMinutes := e.DurationMinutes - pauseMinutes
	passivePerMinute := perMinute * PassiveCaloriesFactor

	burned := perMinute*activeMinutes + passivePerMinute*pauseMinutes
	if !isFinite(burned) || burned < 0 {
		return 0
	}
	return burned
}

func CaloriesHRRounded(a Athlete, e Effort) int {
	return int(math.Round(EstimateCaloriesHR(a, e)))
}

func CaloriesHR2Dec(a Athlete, e Effort) float64 {
	return RoundTo(EstimateCaloriesHR(a, e), 2)
}

type intensityZone int

const (
	zoneLight intensityZone = iota
	zoneModerate
	zoneVigorous
)

const (
	trainingTypeWeights = "weights"
	trainingTypeCardio  = "cardio"

	pauseMET = 1.5
)

var metTable = map[string]map[intensityZone]float64{
	trainingTypeWeights: {
		zoneLight:    3.5,
		zoneModerate: 5.0,
		zoneVigorous: 6.0,
	},
	trainingTypeCardio: {
		zoneLight:    4.0,
		zoneModerate: 6.0,
		zoneVigorous: 8.0,
	},
}

// zoneThresholds are the upper heart rate percentages (of max) for the light
// and moderate zones.
var zoneThresholds = map[string][2]float64{
	trainingTypeWeights: {55, 70},
	trainingTypeCardio:  {60, 75},
}

// KcalFromMET converts a MET value held for the given minutes into kcal.
func KcalFromMET(met, weightKg, minutes float64) float64 {
	return met * 3.5 * weightKg / 200 * minutes
}

func zoneMET(trainingType string, hrPercent float64) float64 {
	tt := strings.ToLower(strings.TrimSpace(trainingType))
	thresholds, ok := zoneThresholds[tt]
	if !ok {
		return metTable[trainingTypeCardio][zoneModerate]
	}

	zone := zoneVigorous
	switch {
	case hrPercent < thresholds[0]:
		zone = zoneLight
	case hrPercent < thresholds[1]:
		zone = zoneModerate
	}
	return metTable[tt][zone]
}

// EstimateCaloriesMET estimates burned kcal from a MET table, picking the
// intensity zone from the heart rate relative to the age predicted max.
func EstimateCaloriesMET(a Athlete, e Effort) int {
	if !a.Complete() {
		return 0
	}

	maxHeartRate := 220 - a.Age
	if maxHeartRate <= 0 {
		return 0
	}
	hrPercent := float64(e.AvgHeartRate) / float64(maxHeartRate) * 100

	totalPause := e.PauseMinutes()
	activeMinutes := max(0, e.DurationMinutes-totalPause)

	burned := KcalFromMET(zoneMET(e.TrainingType, hrPercent), a.WeightKg, activeMinutes) +
		KcalFromMET(pauseMET, a.WeightKg, totalPause)
	if !isFinite(burned) || burned < 0 {
		return 0
	}
	return int(math.Round(burned))
}

type CalorieStrategy string

const (
	CalorieStrategyHeartRate CalorieStrategy = "hr"
	CalorieStrategyMET       CalorieStrategy = "met"
)

// CalorieEstimator hides which strategy the service runs with.
// Decimals is honored where the strategy has sub-kcal precision.
type CalorieEstimator interface {
	Estimate(a Athlete, e Effort, decimals int) float64
	Strategy() CalorieStrategy
}

type HeartRateEstimator struct{}

func (HeartRateEstimator) Estimate(a Athlete, e Effort, decimals int) float64 {
	return RoundTo(EstimateCaloriesHR(a, e), decimals)
}

func (HeartRateEstimator) Strategy() CalorieStrategy {
	return CalorieStrategyHeartRate
}

type METEstimator struct{}

func (METEstimator) Estimate(a Athlete, e Effort, _ int) float64 {
	return float64(EstimateCaloriesMET(a, e))
}

func (METEstimator) Strategy() CalorieStrategy {
	return CalorieStrategyMET
}

// NewCalorieEstimator returns the estimator for the strategy name.
// An empty name selects the heart rate strategy.
func NewCalorieEstimator(strategy string) (CalorieEstimator, error) {
	switch CalorieStrategy(strings.ToLower(strategy)) {
	case "", CalorieStrategyHeartRate:
		return HeartRateEstimator{}, nil
	case CalorieStrategyMET:
		return METEstimator{}, nil
	default:
		return nil, fmt.Errorf("unknown calorie strategy: %s", strategy)
	}
}
