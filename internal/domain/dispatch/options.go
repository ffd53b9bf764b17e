package dispatch

// Option applies a configuration option to the Dispatcher.
type Option func(*Dispatcher)

// WithConstructor registers a constructor for code, replacing any existing
// one. Constructors with a non-positive arity or a nil func are ignored.
func WithConstructor(code string, arity int, fn ConstructorFunc) Option {
	return func(d *Dispatcher) {
		if code == "" || arity <= 0 || fn == nil {
			return
		}
		d.registry[code] = Constructor{Arity: arity, New: fn}
	}
}

// WithoutDefaults leaves SWM/RUN/WLK out of the registry. Its position among
// the options does not matter.
func WithoutDefaults() Option {
	return func(d *Dispatcher) {
		d.noDefaults = true
	}
}
