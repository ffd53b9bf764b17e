// Package model contains domain models passed between layers.
package model

import "fmt"

// messageFormat renders every float with three decimals.
const messageFormat = "Activity type: %s; Duration:%.3f h.; Distance:%.3f km; Avg speed:%.3f km/h; Calories spent:%.3f."

// InfoMessage carries the computed metrics of one training.
type InfoMessage struct {
	TrainingType string  // label of the activity, e.g. "Running"
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the human-readable summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer.
func (m InfoMessage) String() string {
	return m.Message()
}
