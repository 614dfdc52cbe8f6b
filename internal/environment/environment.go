package environment

import (
	"os"
	"sort"
)

// Provider looks up environment variables. The boolean result reports
// whether the variable is present, which lets callers tell an unset
// variable apart from one set to the empty string.
type Provider interface {
	LookupEnv(key string) (string, bool)
}

// OS reads variables from the current process environment.
type OS struct{}

// LookupEnv returns the value of the process environment variable key.
func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed set of variables.
type Map map[string]string

// LookupEnv returns the value stored for key.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the variable names in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Layered consults its providers in order and returns the first hit.
// A variable set to "" in an earlier layer still shadows later layers.
type Layered []Provider

// LookupEnv returns the value from the first provider that has key.
func (l Layered) LookupEnv(key string) (string, bool) {
	for _, p := range l {
		if p == nil {
			continue
		}
		if v, ok := p.LookupEnv(key); ok {
			return v, true
		}
	}
	return "", false
}

// Getenv returns the value of key, or def when key is not present.
func Getenv(p Provider, key, def string) string {
	if v, ok := p.LookupEnv(key); ok {
		return v
	}
	return def
}
