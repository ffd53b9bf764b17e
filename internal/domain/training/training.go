// Package training implements the per-activity formula sets. Each activity
// is an immutable record built from raw sensor readings; distance, mean speed
// and spent calories are pure functions of the record and the constants of
// its activity.
package training

import (
	"fmt"
	"math"

	"github.com/okian/ftracker/internal/domain/model"
)

// Constants shared by every activity.
const (
	mInKm          = 1000 // meters in a kilometer
	minInH         = 60   // minutes in an hour
	defaultLenStep = 0.65 // meters covered by one step
)

// Training is the capability set every activity implements.
type Training interface {
	// Type returns the activity label used in reports.
	Type() string
	// Duration returns the training duration in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned energy in kcal.
	SpentCalories() float64
	// Info collects all computed values into an InfoMessage.
	Info() model.InfoMessage
}

// base holds the readings common to every activity.
type base struct {
	action   int
	duration float64
	weight   float64
}

func newBase(action int, duration, weight float64) (base, error) {
	if !(duration > 0) || math.IsInf(duration, 1) {
		return base{}, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	if action < 0 {
		return base{}, fmt.Errorf("%w: action must not be negative, got %d", ErrInvalidParameter, action)
	}
	if !(weight > 0) || math.IsInf(weight, 1) {
		return base{}, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidParameter, weight)
	}
	return base{action: action, duration: duration, weight: weight}, nil
}

// Action returns the number of steps or strokes.
func (b base) Action() int { return b.action }

// Duration returns the training duration in hours.
func (b base) Duration() float64 { return b.duration }

// Weight returns the athlete weight in kg.
func (b base) Weight() float64 { return b.weight }

// distance converts the action count to km for the given step length in meters.
func (b base) distance(lenStep float64) float64 {
	return float64(b.action) * lenStep / mInKm
}

func (b base) minutes() float64 {
	return b.duration * minInH
}

// infoOf builds an InfoMessage from any Training.
func infoOf(t Training) model.InfoMessage {
	return model.InfoMessage{
		TrainingType: t.Type(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
