package controllers

import (
	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewDepsController); err != nil {
		return err
	}
	if err := container.Provide(NewLayoutController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
func NewControllers(
	depsController *DepsController,
	layoutController *LayoutController,
) *[]entities.Controller {
	return &[]entities.Controller{
		depsController,
		layoutController,
	}
}
