package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from level-file props.
type ScriptFactory func(props map[string]any) (Component, error)

var scriptRegistry = map[string]ScriptFactory{}

// RegisterScript registers a named script factory. Level files attach
// scripts by this name. Registering a name twice panics.
func RegisterScript(name string, factory ScriptFactory) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = factory
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) (Component, error) {
	factory, ok := scriptRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown script %q (registered: %v)", name, GetRegisteredScripts())
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", name, err)
	}
	return c, nil
}

// GetRegisteredScripts returns a sorted list of all registered script names.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropString reads a string prop, returning fallback when absent.
func PropString(props map[string]any, key, fallback string) (string, error) {
	v, ok := props[key]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("prop %q: expected string, got %T", key, v)
	}
	return s, nil
}

// PropFloat reads a numeric prop. YAML and JSON decoders produce either
// ints or float64s for numbers, so both are accepted.
func PropFloat(props map[string]any, key string, fallback float32) (float32, error) {
	v, ok := props[key]
	if !ok {
		return fallback, nil
	}
	switch n := v.(type) {
	case float64:
		return float32(n), nil
	case float32:
		return n, nil
	case int:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("prop %q: expected number, got %T", key, v)
	}
}
