package provisioning

import "fmt"

// Registry maps action kinds to their implementations. The orchestrating
// handler registers the closed set of actions once at startup and resolves
// steps against it; duplicate or unknown kinds are programming errors and
// surface as such.
type Registry struct {
	actions map[Kind]Action
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[Kind]Action)}
}

// Register adds an action to the registry. Registering the same kind twice
// is rejected.
func (r *Registry) Register(a Action) error {
	if a == nil {
		return fmt.Errorf("cannot register nil action")
	}
	if _, exists := r.actions[a.Kind()]; exists {
		return fmt.Errorf("action %q already registered", a.Kind())
	}
	r.actions[a.Kind()] = a
	return nil
}

// MustRegister is Register for wiring code where a duplicate is a bug.
func (r *Registry) MustRegister(a Action) {
	if err := r.Register(a); err != nil {
		panic(err)
	}
}

// Get resolves an action by kind.
func (r *Registry) Get(kind Kind) (Action, error) {
	a, ok := r.actions[kind]
	if !ok {
		return nil, fmt.Errorf("no action registered for kind %q", kind)
	}
	return a, nil
}

// Step resolves a kind into a Step with the given label.
func (r *Registry) Step(name string, kind Kind, required bool) (Step, error) {
	a, err := r.Get(kind)
	if err != nil {
		return Step{}, err
	}
	return Step{Name: name, Action: a, Required: required}, nil
}
