package internal

import (
	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// AppInternal aggregates the controllers the CLI exposes as subcommands.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application aggregate from the registered
// controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
