package gitclone

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

// CloneRepository fetches repository working trees with go-git so that the
// content rules can inspect the build descriptor and license files. Each
// fetch uses a scoped temporary directory that is released on every exit
// path, including timeouts.
type CloneRepository struct {
	cloneTimeout    time.Duration
	checkoutTimeout time.Duration
}

// NewRepoContentRepository creates a clone-backed content repository with
// the policy timeouts: the short one for a shallow clone of the default
// branch, the longer one when a revision has to be resolved.
func NewRepoContentRepository(policy *entities.Policy) repositories.RepoContentRepository {
	return &CloneRepository{
		cloneTimeout:    policy.CloneTimeout(),
		checkoutTimeout: policy.CheckoutTimeout(),
	}
}

// Fetch clones the repository and returns its working tree. The caller owns
// the returned content and must Close it.
func (r *CloneRepository) Fetch(
	ctx context.Context,
	scmURL, revision string,
) (*entities.RepoContent, error) {
	dir, err := os.MkdirTemp("", "extcheck-clone-*")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create working directory: %v",
			repositories.ErrCloneFailed, err)
	}

	cleanup := func() error { return os.RemoveAll(dir) }
	keep := false
	defer func() {
		if keep {
			return
		}
		if cleanupErr := cleanup(); cleanupErr != nil {
			logger.Warnf("Failed to remove clone directory %q: %v", dir, cleanupErr)
		}
	}()

	timeout := r.cloneTimeout
	options := &git.CloneOptions{URL: scmURL, Depth: 1, SingleBranch: true}
	if revision != "" {
		// A pinned revision may not be reachable from the default branch
		// tip, so the clone needs the full history.
		timeout = r.checkoutTimeout
		options = &git.CloneOptions{URL: scmURL}
	}

	cloneCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	repo, err := git.PlainCloneContext(cloneCtx, dir, false, options)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || cloneCtx.Err() != nil {
			return nil, fmt.Errorf("%w: %s after %s",
				repositories.ErrCloneTimeout, scmURL, timeout)
		}
		return nil, fmt.Errorf("%w: %s: %v", repositories.ErrCloneFailed, scmURL, err)
	}

	if revision != "" {
		if checkoutErr := checkoutRevision(repo, revision); checkoutErr != nil {
			return nil, fmt.Errorf("%w: %s: %v",
				repositories.ErrCloneFailed, scmURL, checkoutErr)
		}
	}

	names, err := rootEntries(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repositories.ErrCloneFailed, scmURL, err)
	}

	keep = true
	return entities.NewRepoContent(dir, names, cleanup), nil
}

func checkoutRevision(repo *git.Repository, revision string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return fmt.Errorf("unable to resolve revision %q: %w", revision, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("unable to open worktree: %w", err)
	}

	if checkoutErr := worktree.Checkout(&git.CheckoutOptions{Hash: *hash}); checkoutErr != nil {
		return fmt.Errorf("unable to checkout %q: %w", revision, checkoutErr)
	}
	return nil
}

func rootEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list working tree: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
