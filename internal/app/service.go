// Package service turns sensor packages into training reports. It is the
// single entry point used by both the CLI and the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/okian/ftracker/internal/domain/dispatch"
	"github.com/okian/ftracker/internal/domain/model"
	"github.com/okian/ftracker/internal/domain/training"
	"github.com/okian/ftracker/pkg/logger"
	"github.com/okian/ftracker/pkg/metrics"
)

// Error reasons used as metric labels.
const (
	ReasonInvalidActivityType = "invalid_activity_type"
	ReasonInvalidParameters   = "invalid_parameters"
	ReasonCanceled            = "canceled"
	ReasonUnknown             = "unknown"
)

const nanosecondsPerMillisecond = 1e6

// Service processes packages. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	dispatcher *dispatch.Dispatcher
	metrics    *metrics.Manager
	logger     logger.Logger
	newID      func() string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDispatcher replaces the default SWM/RUN/WLK dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *Service) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

// WithMetrics records metrics on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIDGenerator overrides how report ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New constructs a Service. Without WithLogger the global logger is used,
// so logger.Init must have been called.
func New(opts ...Option) *Service {
	s := &Service{
		dispatcher: dispatch.New(),
		metrics:    metrics.Default(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// Codes returns the supported workout codes.
func (s *Service) Codes() []string {
	return s.dispatcher.Codes()
}

// Process reads one package and computes its report.
func (s *Service) Process(ctx context.Context, p model.Package) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		s.metrics.RecordTrainingError(p.WorkoutType, ReasonCanceled)
		return model.Report{}, fmt.Errorf("process %s: %w", p.WorkoutType, err)
	}

	start := time.Now()
	t, err := s.dispatcher.Read(p.WorkoutType, p.Data)
	if err != nil {
		reason := Reason(err)
		s.metrics.RecordTrainingError(p.WorkoutType, reason)
		s.logger.Warn(ctx, "package rejected",
			logger.String("workout_type", p.WorkoutType),
			logger.Int("params", len(p.Data)),
			logger.String("reason", reason),
			logger.Error(err),
		)
		return model.Report{}, err
	}

	info := t.Info()
	if err := checkFinite(info); err != nil {
		err = fmt.Errorf("read %s: %w", p.WorkoutType, err)
		s.metrics.RecordTrainingError(p.WorkoutType, ReasonInvalidParameters)
		s.logger.Warn(ctx, "package rejected",
			logger.String("workout_type", p.WorkoutType),
			logger.String("reason", ReasonInvalidParameters),
			logger.Error(err),
		)
		return model.Report{}, err
	}

	report := model.Report{
		ID:          s.newID(),
		WorkoutType: p.WorkoutType,
		Info:        info,
		Message:     info.Message(),
	}

	s.metrics.RecordTraining(p.WorkoutType, info.Calories, info.Distance)
	s.metrics.RecordProcessingLatency(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	s.logger.Debug(ctx, "training processed",
		logger.String("id", report.ID),
		logger.String("workout_type", p.WorkoutType),
		logger.String("training_type", info.TrainingType),
		logger.Float64("distance_km", info.Distance),
		logger.Float64("calories_kcal", info.Calories),
	)
	return report, nil
}

// checkFinite rejects results that overflowed float64.
func checkFinite(info model.InfoMessage) error {
	for _, v := range [...]struct {
		name string
		val  float64
	}{
		{"distance", info.Distance},
		{"speed", info.Speed},
		{"calories", info.Calories},
	} {
		if math.IsInf(v.val, 0) || math.IsNaN(v.val) {
			return fmt.Errorf("%w: %s is not finite", training.ErrInvalidParameter, v.name)
		}
	}
	return nil
}

// Run processes packages in order and writes one message line per package
// to w. It stops at the first error.
func (s *Service) Run(ctx context.Context, packages []model.Package, w io.Writer) error {
	for i, p := range packages {
		report, err := s.Process(ctx, p)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, report.Message); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	s.logger.Info(ctx, "packages processed", logger.Int("count", len(packages)))
	return nil
}

// Reason classifies a processing error for metrics and API responses.
func Reason(err error) string {
	switch {
	case errors.Is(err, dispatch.ErrInvalidActivityType):
		return ReasonInvalidActivityType
	case errors.Is(err, dispatch.ErrInvalidArity),
		errors.Is(err, training.ErrInvalidDuration),
		errors.Is(err, training.ErrInvalidParameter):
		return ReasonInvalidParameters
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	default:
		return ReasonUnknown
	}
}
