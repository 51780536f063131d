package scoring

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// ComputeBMR estimates the basal metabolic rate (kcal/day) with the
// Harris-Benedict equations. Anything other than male uses the female coefficients.
func ComputeBMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	if gender == GenderMale {
		return 66.47 + 13.75*weightKg + 5.003*heightCm - 6.755*float64(age)
	}
	return 655.1 + 9.563*weightKg + 1.850*heightCm - 4.676*float64(age)
}

// ComputeBMI returns weight / (height in meters)^2, or 0 for a non-positive height.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

func AgeFromBirthYear(birthYear int, now time.Time) int {
	if birthYear <= 0 {
		return 0
	}
	age := now.Year() - birthYear
	if age < 0 {
		return 0
	}
	return age
}
