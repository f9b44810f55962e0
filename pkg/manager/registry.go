package manager

// Registry holds the supported package manager backends in fixed probe
// priority order.
type Registry struct {
	managers []Manager
}

// NewRegistry creates a registry. Registration order is probe priority.
func NewRegistry(managers ...Manager) *Registry {
	return &Registry{managers: managers}
}

// Register appends a manager to the probe order.
func (r *Registry) Register(mgr Manager) {
	r.managers = append(r.managers, mgr)
}

// Detect returns the first available manager in registration order, or nil
// when none of the control executables is on the search path.
func (r *Registry) Detect() Manager {
	for _, mgr := range r.managers {
		if mgr.IsAvailable() {
			return mgr
		}
	}
	return nil
}

// Get returns a specific manager by name.
func (r *Registry) Get(name string) (Manager, bool) {
	for _, mgr := range r.managers {
		if mgr.Name() == name {
			return mgr, true
		}
	}
	return nil, false
}

// All returns every registered manager, available or not.
func (r *Registry) All() []Manager {
	return r.managers
}
