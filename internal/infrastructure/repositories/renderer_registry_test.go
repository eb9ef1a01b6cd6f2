//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories"
	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories/render"
)

func TestRendererRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a registered renderer by name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewRendererRegistry()
		registry.Register(render.NewConsoleRenderer())

		// when
		renderer, err := registry.Get("console")

		// then
		require.NoError(t, err)
		assert.Equal(t, "console", renderer.Name())
	})

	t.Run("should fail for an unknown output format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewRendererRegistry()
		registry.Register(render.NewConsoleRenderer())

		// when
		renderer, err := registry.Get("xml")

		// then
		require.Error(t, err)
		assert.Nil(t, renderer)
		assert.Contains(t, err.Error(), `unknown output format: "xml"`)
	})

	t.Run("should list the registered names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewRendererRegistry()
		registry.Register(render.NewMarkdownRenderer())
		registry.Register(render.NewConsoleRenderer())

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"console", "markdown"}, names)
	})
}
