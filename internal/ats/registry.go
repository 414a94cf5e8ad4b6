package ats

import (
	"fmt"
	"sync"
)

// PluginContext carries the optional analysis inputs a plugin may consult.
type PluginContext struct {
	JobDescription string
	Industry       string
}

// PluginFunc scores one custom dimension of a resume on a 0-100 scale. A
// returned error (or panic) is isolated to the plugin's own dimension.
type PluginFunc func(resumeText string, ctx PluginContext) (score float64, issues []Issue, metadata map[string]any, err error)

// RegistrationError reports a plugin that could not be registered.
type RegistrationError struct {
	Name    string
	Message string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("plugin %q: %s", e.Name, e.Message)
}

type plugin struct {
	name   string
	weight float64
	fn     PluginFunc
}

// Registry holds analyzer plugins. Registration happens during startup;
// analysis calls only read, so the lock is held briefly on both sides.
type Registry struct {
	mu      sync.RWMutex
	plugins []plugin
	byName  map[string]bool
}

// NewRegistry returns an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]bool)}
}

// DefaultRegistry backs RegisterAnalyzerPlugin and analyzers built without an
// explicit registry.
var DefaultRegistry = NewRegistry()

// RegisterAnalyzerPlugin registers fn on the default registry.
func RegisterAnalyzerPlugin(name string, weight float64, fn PluginFunc) error {
	return DefaultRegistry.Register(name, weight, fn)
}

// Register adds a plugin dimension. Name collisions with the built-in
// dimensions or previously registered plugins, negative weights, and nil
// functions are rejected eagerly.
func (r *Registry) Register(name string, weight float64, fn PluginFunc) error {
	if name == "" {
		return &RegistrationError{Name: name, Message: "name must not be empty"}
	}
	if builtinDimensions[name] {
		return &RegistrationError{Name: name, Message: "name collides with a built-in dimension"}
	}
	if weight < 0 {
		return &RegistrationError{Name: name, Message: fmt.Sprintf("weight must not be negative, got %v", weight)}
	}
	if fn == nil {
		return &RegistrationError{Name: name, Message: "fn must not be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byName[name] {
		return &RegistrationError{Name: name, Message: "name already registered"}
	}
	r.byName[name] = true
	r.plugins = append(r.plugins, plugin{name: name, weight: weight, fn: fn})
	return nil
}

// snapshot returns the registered plugins in registration order.
func (r *Registry) snapshot() []plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}
