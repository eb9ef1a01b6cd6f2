//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/test/domain/entitybuilders"
)

func defaultContext() *entities.RuleContext {
	return &entities.RuleContext{Policy: entities.DefaultPolicy()}
}

func applyRule(t *testing.T, name string, manifest *entities.Manifest, ctx *entities.RuleContext) entities.RuleOutcome {
	t.Helper()
	for _, rule := range entities.NewRuleSet(true) {
		if rule.Name == name {
			return rule.Apply(manifest, ctx)
		}
	}
	t.Fatalf("unknown rule %q", name)
	return entities.RuleOutcome{}
}

func TestRuleApply(t *testing.T) {
	t.Parallel()

	t.Run("should fail with a missing key diagnostic before the body runs", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithoutKey("category").BuildManifest()
		rule := entities.Rule{
			Name:         "check-category",
			Category:     entities.CategoryRuleCategory,
			RequiredKeys: []string{"category"},
			Body: func(*entities.Manifest, *entities.RuleContext) error {
				t.Fatal("body must not run when a precondition fails")
				return nil
			},
		}

		// when
		outcome := rule.Apply(manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Equal(t, "category key is missing", outcome.Message)
	})

	t.Run("should fail with a value-not-set diagnostic for a null key", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithNullKey("category").BuildManifest()
		rule := entities.Rule{
			Name:         "check-category",
			Category:     entities.CategoryRuleCategory,
			RequiredKeys: []string{"category"},
			Body:         func(*entities.Manifest, *entities.RuleContext) error { return nil },
		}

		// when
		outcome := rule.Apply(manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Equal(t, "category value is not set", outcome.Message)
	})

	t.Run("should turn a body rejection into a failed outcome", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		rule := entities.Rule{
			Name:     "always-fails",
			Category: entities.OtherRuleCategory,
			Body: func(*entities.Manifest, *entities.RuleContext) error {
				return errors.New("rejected")
			},
		}

		// when
		outcome := rule.Apply(manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Equal(t, "rejected", outcome.Message)
		assert.Equal(t, entities.OtherRuleCategory, outcome.Category)
	})
}

func TestCheckCategory(t *testing.T) {
	t.Parallel()

	t.Run("should pass for a category in the allow-list", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithCategory("Segmentation").BuildManifest()

		// when
		outcome := applyRule(t, "check-category", manifest, defaultContext())

		// then
		assert.True(t, outcome.Passed)
	})

	t.Run("should fail with the unknown value and the allow-list", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithCategory("Astrology").BuildManifest()

		// when
		outcome := applyRule(t, "check-category", manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "category is 'Astrology'")
		assert.Contains(t, outcome.Message, "Segmentation")
	})

	t.Run("should fail with only the missing-key diagnostic when the key is absent", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithoutKey("category").BuildManifest()

		// when
		outcome := applyRule(t, "check-category", manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Equal(t, "category key is missing", outcome.Message)
	})
}

func TestCheckSCMURLSyntax(t *testing.T) {
	t.Parallel()

	t.Run("should pass for https and git schemes", func(t *testing.T) {
		t.Parallel()

		for _, scmURL := range []string{
			"https://github.com/org/SlicerFoo",
			"git://github.com/org/SlicerFoo.git",
		} {
			// given
			manifest := entitybuilders.NewManifestBuilder().WithSCMURL(scmURL).BuildManifest()

			// when
			outcome := applyRule(t, "check-scm-url-syntax", manifest, defaultContext())

			// then
			assert.True(t, outcome.Passed, scmURL)
		}
	})

	t.Run("should compare the scheme case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("HTTPS://github.com/org/SlicerFoo").BuildManifest()

		// when
		outcome := applyRule(t, "check-scm-url-syntax", manifest, defaultContext())

		// then
		assert.True(t, outcome.Passed)
	})

	t.Run("should fail when the scheme separator is absent", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("github.com/org/SlicerFoo").BuildManifest()

		// when
		outcome := applyRule(t, "check-scm-url-syntax", manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "scheme://host/path")
	})

	t.Run("should fail for an unsupported scheme", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("svn://example.com/repo").BuildManifest()

		// when
		outcome := applyRule(t, "check-scm-url-syntax", manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "scm_url scheme is 'svn'")
	})
}

func TestCheckRepositoryName(t *testing.T) {
	t.Parallel()

	t.Run("should pass unconditionally for an exception-list name", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("https://github.com/org/NeedleFinder").BuildManifest()

		// when
		outcome := applyRule(t, "check-repository-name", manifest, defaultContext())

		// then
		assert.True(t, outcome.Passed)
	})

	t.Run("should pass when the name contains slicer case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("https://github.com/org/MySLICERTools.git").BuildManifest()

		// when
		outcome := applyRule(t, "check-repository-name", manifest, defaultContext())

		// then
		assert.True(t, outcome.Passed)
	})

	t.Run("should suggest exactly the four renamed variants on failure", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().
			WithSCMURL("https://github.com/org/FooBar").BuildManifest()

		// when
		outcome := applyRule(t, "check-repository-name", manifest, defaultContext())

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "extension repository name is 'FooBar'")
		assert.Contains(t, outcome.Message,
			"[Slicer-FooBar Slicer_FooBar SlicerExtension-FooBar SlicerExtension_FooBar]")
	})
}

func TestRepositoryShortName(t *testing.T) {
	t.Parallel()

	t.Run("should strip the trailing archive extension", func(t *testing.T) {
		t.Parallel()

		// given
		cases := map[string]string{
			"https://github.com/org/SlicerFoo.git": "SlicerFoo",
			"https://github.com/org/SlicerFoo":     "SlicerFoo",
			"git://host/path/to/Repo.tar":          "Repo",
		}

		for scmURL, expected := range cases {
			// when
			short := entities.RepositoryShortName(scmURL)

			// then
			assert.Equal(t, expected, short, scmURL)
		}
	})
}

func TestCheckBuildDescriptor(t *testing.T) {
	t.Parallel()

	contentWith := func(t *testing.T, files map[string]string) *entities.RepoContent {
		t.Helper()
		dir := t.TempDir()
		names := make([]string, 0, len(files))
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
			names = append(names, name)
		}
		return entities.NewRepoContent(dir, names, nil)
	}

	t.Run("should fail when repository contents are unavailable", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		ctx := defaultContext()
		ctx.ContentErr = fmt.Errorf("clone timed out")

		// when
		outcome := applyRule(t, "check-build-descriptor", manifest, ctx)

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "repository contents unavailable")
		assert.Contains(t, outcome.Message, "clone timed out")
	})

	t.Run("should fail when the build descriptor is missing", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		ctx := defaultContext()
		ctx.Content = contentWith(t, map[string]string{"README.md": "hello"})

		// when
		outcome := applyRule(t, "check-build-descriptor", manifest, ctx)

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "no build descriptor")
	})

	t.Run("should fail when no project declaration is found", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		ctx := defaultContext()
		ctx.Content = contentWith(t, map[string]string{
			"CMakeLists.txt": "cmake_minimum_required(VERSION 3.16)\n",
		})

		// when
		outcome := applyRule(t, "check-build-descriptor", manifest, ctx)

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "no project() declaration")
	})

	t.Run("should pass when the quoted project name matches the extension name", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithName("SlicerFoo").BuildManifest()
		ctx := defaultContext()
		ctx.Content = contentWith(t, map[string]string{
			"CMakeLists.txt": "cmake_minimum_required(VERSION 3.16)\nPROJECT( \"SlicerFoo\" VERSION 1.0)\n",
		})

		// when
		outcome := applyRule(t, "check-build-descriptor", manifest, ctx)

		// then
		assert.True(t, outcome.Passed, outcome.Message)
	})

	t.Run("should fail on a project name mismatch", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithName("SlicerFoo").BuildManifest()
		ctx := defaultContext()
		ctx.Content = contentWith(t, map[string]string{
			"CMakeLists.txt": "project(SlicerBar)\n",
		})

		// when
		outcome := applyRule(t, "check-build-descriptor", manifest, ctx)

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "project name is 'SlicerBar'")
		assert.Contains(t, outcome.Message, "'SlicerFoo'")
	})
}

func TestCheckLicense(t *testing.T) {
	t.Parallel()

	t.Run("should pass when a conventional license file exists", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		ctx := defaultContext()
		ctx.Content = entities.NewRepoContent("", []string{"LICENSE.txt", "CMakeLists.txt"}, nil)

		// when
		outcome := applyRule(t, "check-license", manifest, ctx)

		// then
		assert.True(t, outcome.Passed)
	})

	t.Run("should fail when no license file is present", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().BuildManifest()
		ctx := defaultContext()
		ctx.Content = entities.NewRepoContent("", []string{"CMakeLists.txt"}, nil)

		// when
		outcome := applyRule(t, "check-license", manifest, ctx)

		// then
		assert.False(t, outcome.Passed)
		assert.Contains(t, outcome.Message, "no license file found")
	})
}

func TestNewRuleSet(t *testing.T) {
	t.Parallel()

	t.Run("should keep a stable order and gate the content rules", func(t *testing.T) {
		t.Parallel()

		// when
		plain := entities.NewRuleSet(false)
		full := entities.NewRuleSet(true)

		// then
		plainNames := make([]string, 0, len(plain))
		for _, rule := range plain {
			plainNames = append(plainNames, rule.Name)
		}
		assert.Equal(t, []string{
			"check-category", "check-scm-url-syntax", "check-repository-name",
		}, plainNames)
		require.Len(t, full, 5)
		assert.Equal(t, "check-build-descriptor", full[3].Name)
		assert.Equal(t, "check-license", full[4].Name)
	})
}
