// Package dispatch maps short workout codes to training constructors and
// builds activity records from positional sensor data.
package dispatch

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/ftracker/internal/domain/training"
)

// Workout codes understood by the default registry.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// ConstructorFunc builds a training from positional data. The slice length
// is checked against the registered arity before the call.
type ConstructorFunc func(data []float64) (training.Training, error)

// Constructor pairs a ConstructorFunc with the number of values it expects.
type Constructor struct {
	Arity int
	New   ConstructorFunc
}

// Dispatcher selects the constructor for a workout code.
// The registry is read-only after New, so a Dispatcher is safe for concurrent use.
type Dispatcher struct {
	registry   map[string]Constructor
	noDefaults bool
}

// New creates a Dispatcher with the SWM, RUN and WLK codes registered.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{registry: make(map[string]Constructor)}
	for _, opt := range opts {
		opt(d)
	}
	if !d.noDefaults {
		// Codes registered through WithConstructor take precedence.
		for code, c := range defaultRegistry() {
			if _, ok := d.registry[code]; !ok {
				d.registry[code] = c
			}
		}
	}
	return d
}

var defaultDispatcher = New() //nolint:gochecknoglobals // read-only default registry

// Read builds a training with the default dispatcher.
func Read(code string, data []float64) (training.Training, error) {
	return defaultDispatcher.Read(code, data)
}

// Read builds the training registered for code from data.
// Parameter order follows the constructor of the matching activity.
func (d *Dispatcher) Read(code string, data []float64) (training.Training, error) {
	c, ok := d.registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidActivityType, code)
	}
	if len(data) != c.Arity {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrInvalidArity, code, c.Arity, len(data))
	}
	t, err := c.New(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", code, err)
	}
	return t, nil
}

// Codes returns the registered workout codes in sorted order.
func (d *Dispatcher) Codes() []string {
	codes := make([]string, 0, len(d.registry))
	for code := range d.registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Arity returns the number of values code expects, or false if unknown.
func (d *Dispatcher) Arity(code string) (int, bool) {
	c, ok := d.registry[code]
	return c.Arity, ok
}

func defaultRegistry() map[string]Constructor {
	return map[string]Constructor{
		CodeSwimming: {Arity: 5, New: newSwimming},
		CodeRunning:  {Arity: 3, New: newRunning},
		CodeWalking:  {Arity: 4, New: newWalking},
	}
}

func newRunning(data []float64) (training.Training, error) {
	action, err := count("action", data[0])
	if err != nil {
		return nil, err
	}
	return training.NewRunning(action, data[1], data[2])
}

func newWalking(data []float64) (training.Training, error) {
	action, err := count("action", data[0])
	if err != nil {
		return nil, err
	}
	return training.NewSportsWalking(action, data[1], data[2], data[3])
}

func newSwimming(data []float64) (training.Training, error) {
	action, err := count("action", data[0])
	if err != nil {
		return nil, err
	}
	laps, err := count("pool count", data[4])
	if err != nil {
		return nil, err
	}
	return training.NewSwimming(action, data[1], data[2], data[3], laps)
}

// count converts a positional value that must hold a whole number.
func count(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", training.ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
