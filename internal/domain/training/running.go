package training

import "github.com/okian/ftracker/internal/domain/model"

// Running calorie constants.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// RunningType is the label of a running training.
const RunningType = "Running"

// Running is a running training.
type Running struct {
	base
}

var _ Training = Running{}

// NewRunning builds a running record.
func NewRunning(action int, duration, weight float64) (Running, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{base: b}, nil
}

// Type implements Training.
func (Running) Type() string { return RunningType }

// Distance implements Training.
func (r Running) Distance() float64 { return r.distance(defaultLenStep) }

// MeanSpeed implements Training.
func (r Running) MeanSpeed() float64 { return r.Distance() / r.duration }

// SpentCalories implements Training.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.minutes()
}

// Info implements Training.
func (r Running) Info() model.InfoMessage { return infoOf(r) }
