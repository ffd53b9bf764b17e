package model

// Package is one sensor reading: a workout code and its positional data.
type Package struct {
	WorkoutType string    `koanf:"workout_type" json:"workout_type"`
	Data        []float64 `koanf:"data" json:"data"`
}

// Report is a processed package.
type Report struct {
	ID          string
	WorkoutType string
	Info        InfoMessage
	Message     string
}
