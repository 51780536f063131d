package users

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/healthapi/internal/scoring"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"-"`
	BirthYear    int            `json:"birthYear"`
	Gender       scoring.Gender `json:"gender"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Profile holds what the energy estimators need to know about a user.
type Profile struct {
	UserID    uuid.UUID      `json:"userId"`
	BirthYear int            `json:"birthYear"`
	Gender    scoring.Gender `json:"gender"`
	// WeightKg is the weight of the most recent body log, 0 if none exists.
	WeightKg float64 `json:"weightKg"`
}

func (p Profile) Age(now time.Time) int {
	return scoring.AgeFromBirthYear(p.BirthYear, now)
}

// AgeKnown reports whether the birth year is set and not in the future.
func (p Profile) AgeKnown(now time.Time) bool {
	return p.BirthYear > 0 && p.BirthYear <= now.Year()
}

func (p Profile) Athlete(now time.Time) scoring.Athlete {
	age := scoring.UnknownAge
	if p.AgeKnown(now) {
		age = p.Age(now)
	}
	return scoring.Athlete{
		Age:      age,
		Gender:   p.Gender,
		WeightKg: p.WeightKg,
	}
}
