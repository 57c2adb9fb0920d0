package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per config type together with the Once that guards its parsing.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	store = &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	dotenvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment.
// Without arguments it reads ./.env. Variables already set in the
// environment are not overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	// An explicit load replaces the implicit one done by Load.
	dotenvOnce.Do(func() {})
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Load parses environment variables into v. The first successful parse of a
// type is cached; later calls for the same type copy the cached value.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := store.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	store.once(key).Do(func() {
		if perr := env.Parse(v); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			return
		}
		store.set(key, *v)
	})
	if err != nil {
		// Let a later call retry once the environment is fixed.
		store.forget(key)
		return err
	}

	if cached, ok := store.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// Reload drops the cached value of T and parses it again.
func Reload[T any](v *T) error {
	store.forget(typeKey[T]())
	return Load(v)
}

// Reset clears every cached config. Intended for tests.
func Reset() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values = make(map[string]any)
	store.onces = make(map[string]*sync.Once)
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *cache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *cache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *cache) forget(key string) {
	c.mu.Lock()
	delete(c.values, key)
	delete(c.onces, key)
	c.mu.Unlock()
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}
