package training

import (
	"fmt"
	"math"

	"github.com/okian/ftracker/internal/domain/model"
)

// Sports walking calorie constants.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278 // km/h -> m/s
	cmInM                           = 100
)

// SportsWalkingType is the label of a sports walking training.
const SportsWalkingType = "SportsWalking"

// SportsWalking is a sports walking training. Calories depend on the
// athlete height.
type SportsWalking struct {
	base
	height float64
}

var _ Training = SportsWalking{}

// NewSportsWalking builds a sports walking record. Height is in cm.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if !(height > 0) || math.IsInf(height, 1) {
		return SportsWalking{}, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidParameter, height)
	}
	return SportsWalking{base: b, height: height}, nil
}

// Height returns the athlete height in cm.
func (w SportsWalking) Height() float64 { return w.height }

// Type implements Training.
func (SportsWalking) Type() string { return SportsWalkingType }

// Distance implements Training.
func (w SportsWalking) Distance() float64 { return w.distance(defaultLenStep) }

// MeanSpeed implements Training.
func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.duration }

// SpentCalories implements Training.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed() * kmhInMsec
	return (walkingCaloriesWeightMultiplier*w.weight +
		(speed*speed/(w.height/cmInM))*walkingSpeedHeightMultiplier*w.weight) * w.minutes()
}

// Info implements Training.
func (w SportsWalking) Info() model.InfoMessage { return infoOf(w) }
