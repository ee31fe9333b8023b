package internal

import (
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// AppInternal holds every controller exposed as a CLI subcommand.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the controller list.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
