// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package to rescope the scaffolder to a
// different study, and Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	GitHubRepo       string `yaml:"github_repo"`
	ProjectTitle     string `yaml:"project_title"`
	DatasetAccession string `yaml:"dataset_accession"`
	DatasetURL       string `yaml:"dataset_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "scproj",
			DisplayName:      "scproj",
			Description:      "Workspace scaffolder for single-cell RNA-seq analysis projects",
			HomeDir:          ".scproj",
			EnvPrefix:        "SCPROJ",
			GoModule:         "github.com/scproj-labs/scproj",
			GitHubRepo:       "scproj-labs/scproj",
			ProjectTitle:     "Melanoma Single-Cell Landscape",
			DatasetAccession: "GSE115978",
			DatasetURL:       "https://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?acc=GSE115978",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scproj").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".scproj").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SCPROJ").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ProjectTitle returns the study title used in banners and the README.
func ProjectTitle() string { load(); return defaults.ProjectTitle }

// DatasetAccession returns the GEO accession the project is built around.
func DatasetAccession() string { load(); return defaults.DatasetAccession }

// DatasetURL returns the GEO landing page for the dataset.
func DatasetURL() string { load(); return defaults.DatasetURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("AUTHOR") → "SCPROJ_AUTHOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
