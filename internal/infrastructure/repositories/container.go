package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/extcheck/internal/domain/repositories"
	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories/gitclone"
	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories/render"
)

// RepoContentFactory builds the repository-content collaborator for a run,
// once the policy (and its timeouts) is known.
type RepoContentFactory func(policy *entities.Policy) domainRepos.RepoContentRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(filesystem.NewManifestSource); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewLayoutRepository); err != nil {
		return err
	}

	if err := container.Provide(func() RepoContentFactory {
		return gitclone.NewRepoContentRepository
	}); err != nil {
		return err
	}

	// Register renderer registry with all renderer implementations
	if err := container.Provide(func() *RendererRegistry {
		reg := NewRendererRegistry()
		reg.Register(render.NewConsoleRenderer())
		reg.Register(render.NewMarkdownRenderer())
		reg.Register(render.NewPrettyRenderer())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
