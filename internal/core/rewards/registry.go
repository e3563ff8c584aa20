package rewards

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/rewardshaping/pkg/encoding"
)

// Factory builds a reward from generic params overlaid on its defaults.
type Factory func(params map[string]any) (LoggableReward, error)

type Registry interface {
	Register(name string, factory Factory)
	New(name string, params map[string]any) (LoggableReward, error)
	Names() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &registry{factories: make(map[string]Factory)}
}

func (r *registry) Register(name string, factory Factory) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

func (r *registry) New(name string, params map[string]any) (LoggableReward, error) {
	r.mu.RLock()
	f := r.factories[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReward, name)
	}
	return f(params)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// FactoryOf adapts a typed constructor. defaults must return a fresh pointer
// each call; params are overlaid on it and the result validated.
func FactoryOf[T Config](defaults func() T, ctor func(T) LoggableReward) Factory {
	return func(params map[string]any) (LoggableReward, error) {
		args := defaults()
		if err := encoding.Overlay(params, args); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := args.Validate(); err != nil {
			return nil, err
		}
		return ctor(args), nil
	}
}
