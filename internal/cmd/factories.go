package cmd

import (
	"studylog/internal/services"
	"studylog/internal/storage"
)

// Container holds all dependencies for the application
type Container struct {
	Store          *storage.JSONStore
	TrackerService *services.TrackerService
}

// NewContainer creates a new Container with all dependencies wired.
// An empty dataFile selects the default data location.
func NewContainer(dataFile string) *Container {
	store := storage.NewJSONStore(dataFile)
	return &Container{
		Store:          store,
		TrackerService: services.NewTrackerService(store),
	}
}
