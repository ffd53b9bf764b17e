package training

import (
	"fmt"
	"math"

	"github.com/okian/ftracker/internal/domain/model"
)

// Swimming constants.
const (
	swimmingLenStep                  = 1.38 // meters per stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// SwimmingType is the label of a swimming training.
const SwimmingType = "Swimming"

// Swimming is a pool swimming training. Mean speed comes from the pool
// geometry, not from the stroke count.
type Swimming struct {
	base
	poolLength float64 // meters
	poolCount  int     // laps
}

var _ Training = Swimming{}

// NewSwimming builds a swimming record.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (Swimming, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if !(poolLength > 0) || math.IsInf(poolLength, 1) {
		return Swimming{}, fmt.Errorf("%w: pool length must be positive, got %v", ErrInvalidParameter, poolLength)
	}
	if poolCount < 0 {
		return Swimming{}, fmt.Errorf("%w: pool count must not be negative, got %d", ErrInvalidParameter, poolCount)
	}
	return Swimming{base: b, poolLength: poolLength, poolCount: poolCount}, nil
}

// PoolLength returns the pool length in meters.
func (s Swimming) PoolLength() float64 { return s.poolLength }

// PoolCount returns how many times the pool was crossed.
func (s Swimming) PoolCount() int { return s.poolCount }

// Type implements Training.
func (Swimming) Type() string { return SwimmingType }

// Distance implements Training.
func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

// MeanSpeed implements Training.
func (s Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / mInKm / s.duration
}

// SpentCalories implements Training.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier *
		s.weight * s.duration
}

// Info implements Training.
func (s Swimming) Info() model.InfoMessage { return infoOf(s) }
