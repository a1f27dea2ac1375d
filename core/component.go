package core

// Component is anything the app has to stop on exit. Components are shut
// down in the reverse order they were registered.
type Component interface {
	Shutdown() error
}

// AsyncComponent is a component started in its own goroutine. The app waits
// on WaitForReady before registering it.
type AsyncComponent interface {
	Component
	WaitForReady() chan bool
}
