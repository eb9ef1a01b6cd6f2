package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// Typed failures of the repository-content collaborator. They degrade the
// affected manifest's result; they never abort the run.
var (
	ErrCloneTimeout = errors.New("clone timed out")
	ErrCloneFailed  = errors.New("clone failed")
)

// RepoContentRepository fetches a repository working tree so that content
// rules can inspect its build descriptor and license files. An empty
// revision means the default branch.
type RepoContentRepository interface {
	Fetch(ctx context.Context, scmURL, revision string) (*entities.RepoContent, error)
}
