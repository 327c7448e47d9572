package engine

// System is one stage of the per-tick pipeline
type System interface {
	// Init resets system-local state, called on construction and restart
	Init()
	Name() string
	// Priority orders Update calls, lower runs first
	Priority() int
	Update()
}
