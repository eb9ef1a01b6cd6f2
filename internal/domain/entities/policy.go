package entities

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy is the immutable configuration injected into the validation run:
// the category allow-list, the repository-name exceptions, the index layout
// allow-lists, and the execution limits. It is loaded from a YAML file or
// built from defaults; it is never mutated after construction.
type Policy struct {
	Categories               []string `yaml:"categories"`
	RepositoryNameExceptions []string `yaml:"repository_name_exceptions"`
	AllowedDirectories       []string `yaml:"allowed_directories"`
	AllowedFiles             []string `yaml:"allowed_files"`
	AllowedExtensions        []string `yaml:"allowed_extensions"`
	LicenseFileNames         []string `yaml:"license_file_names"`
	Workers                  int      `yaml:"workers"`
	CloneTimeoutSeconds      int      `yaml:"clone_timeout_seconds"`
	CheckoutTimeoutSeconds   int      `yaml:"checkout_timeout_seconds"`
}

const (
	defaultWorkers                = 6
	defaultCloneTimeoutSeconds    = 30
	defaultCheckoutTimeoutSeconds = 120
)

// DefaultPolicy returns the maintained policy: the accepted extension
// categories, the grandfathered repository names, and the expected index
// repository layout.
func DefaultPolicy() *Policy {
	return &Policy{
		Categories: []string{
			"Cardiac",
			"Converters",
			"Developer Tools",
			"Diffusion",
			"Examples",
			"Exporter",
			"Filtering",
			"IGT",
			"Informatics",
			"Legacy",
			"Neuroimaging",
			"Nuclear Medicine",
			"Orthodontics",
			"Osteotomy Planning",
			"Photogrammetry",
			"Printing",
			"Quantification",
			"Radiotherapy",
			"Registration",
			"Remote",
			"Rendering",
			"Segmentation",
			"Sequences",
			"Shape Analysis",
			"Simulation",
			"Spectroscopy",
			"Surface Models",
			"Tractography",
			"Training",
			"Utilities",
			"Vascular Modeling",
			"Virtual Reality",
			"Web System Tools",
		},
		RepositoryNameExceptions: []string{
			"3DMetricTools",
			"ai-assisted-annotation-client",
			"aigt",
			"AnglePlanes-Extension",
			"AnomalousFiltersExtension",
			"BoneTextureExtension",
			"CarreraSlice",
			"ChangeTrackerPy",
			"CMFreg",
			"CurveMaker",
			"DatabaseInteractorExtension",
			"dcmqi",
			"DSC_Analysis",
			"EasyClip-Extension",
			"ErodeDilateLabel",
			"FilmDosimetryAnalysis",
			"GelDosimetryAnalysis",
			"GyroGuide",
			"iGyne",
			"ImageMaker",
			"IntensitySegmenter",
			"MeshStatisticsExtension",
			"MeshToLabelMap",
			"ModelClip",
			"MONAILabel",
			"mpReview",
			"NeedleFinder",
			"opendose3d",
			"OsteotomyPlanner",
			"PBNRR",
			"PedicleScrewSimulator",
			"PercutaneousApproachAnalysis",
			"PerkTutor",
			"PET-IndiC",
			"PETLiverUptakeMeasurement",
			"PETTumorSegmentation",
			"PickAndPaintExtension",
			"PkModeling",
			"PortPlacement",
			"Q3DCExtension",
			"QuantitativeReporting",
			"ResectionPlanner",
			"ScatteredTransform",
			"Scoliosis",
			"SegmentationAidedRegistration",
			"SegmentationReview",
			"SegmentRegistration",
			"ShapePopulationViewer",
			"ShapeRegressionExtension",
			"ShapeVariationAnalyzer",
			"SkullStripper",
			"SNRMeasurement",
			"SPHARM-PDM",
			"T1Mapping",
			"TCIABrowser",
			"ukftractography",
			"VASSTAlgorithms",
		},
		AllowedDirectories: []string{
			".circleci",
			".git",
			".github",
			".idea",
			"ARCHIVE",
			"scripts",
		},
		AllowedFiles: []string{
			".git-blame-ignore-revs",
			".pre-commit-config.yaml",
			".prettierrc.js",
			"README.md",
		},
		AllowedExtensions: []string{".json"},
		LicenseFileNames: []string{
			"LICENSE",
			"LICENSE.txt",
			"LICENSE.md",
			"COPYING",
			"COPYING.txt",
		},
		Workers:                defaultWorkers,
		CloneTimeoutSeconds:    defaultCloneTimeoutSeconds,
		CheckoutTimeoutSeconds: defaultCheckoutTimeoutSeconds,
	}
}

// LoadPolicy reads a YAML policy file. Fields left empty in the file keep
// their default values.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %q: %w", path, err)
	}

	policy := DefaultPolicy()
	if unmarshalErr := yaml.Unmarshal(data, policy); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse policy file %q: %w", path, unmarshalErr)
	}

	if policy.Workers <= 0 {
		policy.Workers = defaultWorkers
	}
	if policy.CloneTimeoutSeconds <= 0 {
		policy.CloneTimeoutSeconds = defaultCloneTimeoutSeconds
	}
	if policy.CheckoutTimeoutSeconds <= 0 {
		policy.CheckoutTimeoutSeconds = defaultCheckoutTimeoutSeconds
	}

	return policy, nil
}

// IsCategoryAllowed reports whether the category belongs to the allow-list.
func (p *Policy) IsCategoryAllowed(category string) bool {
	for _, allowed := range p.Categories {
		if category == allowed {
			return true
		}
	}
	return false
}

// IsRepositoryNameException reports whether the repository short name is
// grandfathered out of the naming convention.
func (p *Policy) IsRepositoryNameException(repoName string) bool {
	for _, exception := range p.RepositoryNameExceptions {
		if repoName == exception {
			return true
		}
	}
	return false
}

// CloneTimeout is the limit for a shallow clone of the default branch.
func (p *Policy) CloneTimeout() time.Duration {
	return time.Duration(p.CloneTimeoutSeconds) * time.Second
}

// CheckoutTimeout is the limit for a full clone with a revision checkout.
func (p *Policy) CheckoutTimeout() time.Duration {
	return time.Duration(p.CheckoutTimeoutSeconds) * time.Second
}
