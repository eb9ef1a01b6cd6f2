//go:build integration

package gitclone_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
	"github.com/rios0rios0/extcheck/internal/infrastructure/repositories/gitclone"
)

// initOriginRepository creates a local repository with one commit holding a
// build descriptor and a license file, and returns its path and branch name.
func initOriginRepository(t *testing.T) (string, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "origin")
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	descriptor := []byte("cmake_minimum_required(VERSION 3.16)\nproject(SlicerTestExtension)\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), descriptor, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("MIT\n"), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(".")
	require.NoError(t, err)

	_, err = worktree.Commit("initial import", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "author@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	return dir, head.Name().Short()
}

func TestCloneRepository_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("should fetch the working tree of a local repository", func(t *testing.T) {
		t.Parallel()

		// given
		origin, _ := initOriginRepository(t)
		repository := gitclone.NewRepoContentRepository(entities.DefaultPolicy())

		// when
		content, err := repository.Fetch(context.Background(), origin, "")

		// then
		require.NoError(t, err)
		defer content.Close()
		assert.True(t, content.HasFile("CMakeLists.txt"))
		assert.True(t, content.HasFile("LICENSE"))
		raw, readErr := content.ReadFile("CMakeLists.txt")
		require.NoError(t, readErr)
		assert.Contains(t, string(raw), "project(SlicerTestExtension)")
	})

	t.Run("should checkout a pinned revision", func(t *testing.T) {
		t.Parallel()

		// given
		origin, branch := initOriginRepository(t)
		repository := gitclone.NewRepoContentRepository(entities.DefaultPolicy())

		// when
		content, err := repository.Fetch(context.Background(), origin, branch)

		// then
		require.NoError(t, err)
		defer content.Close()
		assert.True(t, content.HasFile("LICENSE"))
	})

	t.Run("should remove the working tree on close", func(t *testing.T) {
		t.Parallel()

		// given
		origin, _ := initOriginRepository(t)
		repository := gitclone.NewRepoContentRepository(entities.DefaultPolicy())
		content, err := repository.Fetch(context.Background(), origin, "")
		require.NoError(t, err)

		// when
		require.NoError(t, content.Close())

		// then
		_, statErr := os.Stat(content.Dir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should fail when the repository does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repository := gitclone.NewRepoContentRepository(entities.DefaultPolicy())
		missing := filepath.Join(t.TempDir(), "does-not-exist")

		// when
		content, err := repository.Fetch(context.Background(), missing, "")

		// then
		require.Error(t, err)
		assert.Nil(t, content)
		assert.ErrorIs(t, err, repositories.ErrCloneFailed)
	})

	t.Run("should fail when the revision cannot be resolved", func(t *testing.T) {
		t.Parallel()

		// given
		origin, _ := initOriginRepository(t)
		repository := gitclone.NewRepoContentRepository(entities.DefaultPolicy())

		// when
		content, err := repository.Fetch(context.Background(), origin, "no-such-tag")

		// then
		require.Error(t, err)
		assert.Nil(t, content)
		assert.ErrorIs(t, err, repositories.ErrCloneFailed)
	})
}
