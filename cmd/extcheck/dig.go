package main

import (
	"github.com/rios0rios0/extcheck/internal"
	"github.com/rios0rios0/extcheck/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectCheckController() *controllers.CheckController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var checkController *controllers.CheckController
	if err := container.Invoke(func(cc *controllers.CheckController) {
		checkController = cc
	}); err != nil {
		panic(err)
	}

	return checkController
}
