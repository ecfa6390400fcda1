package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scproj-labs/scproj/internal/branding"
	"go.yaml.in/yaml/v3"
)

// FileName is the manifest file name at the project root.
const FileName = "project.yaml"

// Path returns the full path to project.yaml for a project directory.
func Path(base string) string {
	return filepath.Join(base, FileName)
}

// Default returns a manifest pre-filled with the branded study identity.
func Default(author, toolVersion string) *ProjectManifest {
	return &ProjectManifest{
		Name:        branding.ProjectTitle(),
		Description: branding.Description(),
		Author:      author,
		Created:     time.Now().Format("2006-01-02"),
		Dataset: DatasetRef{
			Accession: branding.DatasetAccession(),
			URL:       branding.DatasetURL(),
		},
		Tool: ToolInfo{
			Name:    branding.CLIName(),
			Version: toolVersion,
		},
	}
}

// Load reads and parses project.yaml from the given project directory.
func Load(base string) (*ProjectManifest, error) {
	return LoadFile(Path(base))
}

// LoadFile reads and parses a manifest at an explicit path.
func LoadFile(path string) (*ProjectManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Save writes the manifest to project.yaml in the given project directory.
func Save(base string, m *ProjectManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(Path(base), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
