package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry serializes parsing per type. loaded is set only after a successful
// parse, so a failure is retried on the next Load.
type entry struct {
	mu     sync.Mutex
	loaded bool
	value  any
}

var (
	mu    sync.Mutex
	cache = map[reflect.Type]*entry{}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. A successful parse is cached per
// type and returned on every later call; failures are not cached.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	e := lookup(reflect.TypeFor[T]())
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			return errors.Join(ErrParsingConfig, err)
		}
		e.value = cfg
		e.loaded = true
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFiles loads the given dotenv files into the process environment.
// Variables that are already set are not overridden.
func LoadFiles(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops all cached configurations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[reflect.Type]*entry{}
}

func lookup(t reflect.Type) *entry {
	mu.Lock()
	defer mu.Unlock()
	e, ok := cache[t]
	if !ok {
		e = &entry{}
		cache[t] = e
	}
	return e
}
