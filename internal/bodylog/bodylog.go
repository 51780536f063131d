package bodylog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/healthapi/internal/scoring"
)

var (
	ErrBodyLogNotFound = errors.New("body log not found")
	ErrEmptyUpdate     = errors.New("no fields to update")
)

const (
	maxWeightKg = 1000
	maxHeightCm = 300
)

type BodyLog struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Date          string    `json:"date"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	FatMass       *float64  `json:"fatMass,omitempty"`
	FatPercentage *float64  `json:"fatPercentage,omitempty"`
	MuscleMass    *float64  `json:"muscleMass,omitempty"`
	WaterMass     *float64  `json:"waterMass,omitempty"`
	BMI           float64   `json:"bmi"`
	BMR           float64   `json:"bmr"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateRequest struct {
	Date          string   `json:"date"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	FatMass       *float64 `json:"fatMass"`
	FatPercentage *float64 `json:"fatPercentage"`
	MuscleMass    *float64 `json:"muscleMass"`
	WaterMass     *float64 `json:"waterMass"`
}

// UpdateRequest carries a partial update. A nil field keeps the stored value.
type UpdateRequest struct {
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	FatMass       *float64 `json:"fatMass"`
	FatPercentage *float64 `json:"fatPercentage"`
	MuscleMass    *float64 `json:"muscleMass"`
	WaterMass     *float64 `json:"waterMass"`
}

func (u UpdateRequest) Empty() bool {
	return u.Weight == nil && u.Height == nil && u.FatMass == nil &&
		u.FatPercentage == nil && u.MuscleMass == nil && u.WaterMass == nil
}

// apply merges the update into b, falling back to the previous value per field.
func (u UpdateRequest) apply(b *BodyLog) {
	if u.Weight != nil {
		b.Weight = *u.Weight
	}
	if u.Height != nil {
		b.Height = *u.Height
	}
	if u.FatMass != nil {
		b.FatMass = u.FatMass
	}
	if u.FatPercentage != nil {
		b.FatPercentage = u.FatPercentage
	}
	if u.MuscleMass != nil {
		b.MuscleMass = u.MuscleMass
	}
	if u.WaterMass != nil {
		b.WaterMass = u.WaterMass
	}
}

func (b *BodyLog) validate() error {
	if b.Weight <= 0 || b.Weight > maxWeightKg {
		return fmt.Errorf("%w: weight must be in (0, %d] kg", scoring.ErrInvalidInput, maxWeightKg)
	}
	if b.Height <= 0 || b.Height > maxHeightCm {
		return fmt.Errorf("%w: height must be in (0, %d] cm", scoring.ErrInvalidInput, maxHeightCm)
	}
	optional := map[string]*float64{
		"fatMass":       b.FatMass,
		"fatPercentage": b.FatPercentage,
		"muscleMass":    b.MuscleMass,
		"waterMass":     b.WaterMass,
	}
	for name, v := range optional {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", scoring.ErrInvalidInput, name)
		}
	}
	if b.FatPercentage != nil && *b.FatPercentage > 100 {
		return fmt.Errorf("%w: fatPercentage must not exceed 100", scoring.ErrInvalidInput)
	}
	return nil
}

// deriveMetrics fills BMI and BMR from the measurements and the owner's age and gender.
func (b *BodyLog) deriveMetrics(age int, gender scoring.Gender) {
	b.BMI = scoring.RoundTo(scoring.ComputeBMI(b.Weight, b.Height), 2)
	b.BMR = scoring.RoundTo(scoring.ComputeBMR(b.Weight, b.Height, age, gender), 2)
}

// CaloriesOnDay is the estimated total energy expenditure for one day.
type CaloriesOnDay struct {
	Date             string  `json:"date"`
	BMR              float64 `json:"bmr"`
	TrainingCalories float64 `json:"trainingCalories"`
	Total            float64 `json:"total"`
}
