package multiply

import (
	"fmt"
	"sort"
	"sync"
)

// Registry creates and caches Multiplier instances by key.
type Registry interface {
	// Create returns a new Multiplier for key, bypassing the cache.
	Create(key string) (Multiplier, error)
	// Get returns the cached Multiplier for key, creating it on first use.
	Get(key string) (Multiplier, error)
	// List returns the sorted registered keys.
	List() []string
	// GetAll returns every registered Multiplier by key.
	GetAll() map[string]Multiplier
}

// creator builds a strategy for the given options.
type creator func(opts Options) coreMultiplier

// DefaultRegistry is the default Registry. It is safe for concurrent use.
type DefaultRegistry struct {
	mu          sync.RWMutex
	opts        Options
	creators    map[string]creator
	multipliers map[string]Multiplier
}

// Strategy keys of the built-in multipliers.
const (
	KeySchoolbook = "schoolbook"
	KeyKaratsuba  = "karatsuba"
	KeyToomCook3  = "toom3"
	KeyFFT        = "fft"
)

// builtins lists the strategies every registry starts with. Build-tagged
// strategies add themselves through RegisterMultiplier.
var (
	builtinsMu sync.Mutex
	builtins   = map[string]creator{
		KeySchoolbook: func(Options) coreMultiplier { return schoolbookCore{} },
		KeyKaratsuba:  func(Options) coreMultiplier { return karatsubaCore{} },
		KeyToomCook3: func(opts Options) coreMultiplier {
			return toomCookCore{tc: ToomCook{Inverter: opts.Inverter}}
		},
		KeyFFT: func(Options) coreMultiplier { return fftCore{} },
	}
)

// NewRegistry returns a registry holding the built-in strategies configured
// with opts.
func NewRegistry(opts Options) *DefaultRegistry {
	r := &DefaultRegistry{
		opts:        opts,
		creators:    make(map[string]creator),
		multipliers: make(map[string]Multiplier),
	}
	builtinsMu.Lock()
	defer builtinsMu.Unlock()
	for key, c := range builtins {
		r.creators[key] = c
	}
	return r
}

// NewDefaultRegistry returns a registry with default options.
func NewDefaultRegistry() *DefaultRegistry {
	return NewRegistry(Options{})
}

// Register adds or replaces a strategy. A cached instance for key is
// dropped.
func (r *DefaultRegistry) Register(key string, c func(opts Options) coreMultiplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[key] = c
	delete(r.multipliers, key)
}

// Has reports whether key is registered.
func (r *DefaultRegistry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.creators[key]
	return ok
}

// Create implements Registry.
func (r *DefaultRegistry) Create(key string) (Multiplier, error) {
	r.mu.RLock()
	c, ok := r.creators[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", key)
	}
	return NewMultiplier(c(r.opts)), nil
}

// Get implements Registry.
func (r *DefaultRegistry) Get(key string) (Multiplier, error) {
	r.mu.RLock()
	if m, ok := r.multipliers[key]; ok {
		r.mu.RUnlock()
		return m, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.multipliers[key]; ok {
		return m, nil
	}
	c, ok := r.creators[key]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", key)
	}
	m := NewMultiplier(c(r.opts))
	r.multipliers[key] = m
	return m, nil
}

// List implements Registry.
func (r *DefaultRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.creators))
	for key := range r.creators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetAll implements Registry.
func (r *DefaultRegistry) GetAll() map[string]Multiplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, c := range r.creators {
		if _, ok := r.multipliers[key]; !ok {
			r.multipliers[key] = NewMultiplier(c(r.opts))
		}
	}
	out := make(map[string]Multiplier, len(r.multipliers))
	for key, m := range r.multipliers {
		out[key] = m
	}
	return out
}

var globalRegistry = NewDefaultRegistry()

// GlobalRegistry returns the process-wide registry with default options.
func GlobalRegistry() *DefaultRegistry {
	return globalRegistry
}

// RegisterMultiplier makes a strategy available to every registry created
// afterwards and to the global registry.
func RegisterMultiplier(key string, c func(opts Options) coreMultiplier) {
	builtinsMu.Lock()
	builtins[key] = c
	builtinsMu.Unlock()
	globalRegistry.Register(key, c)
}
