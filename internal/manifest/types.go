package manifest

// ProjectManifest describes an initialized analysis workspace.
type ProjectManifest struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string     `yaml:"author,omitempty" json:"author,omitempty"`
	Created     string     `yaml:"created" json:"created"` // YYYY-MM-DD
	Dataset     DatasetRef `yaml:"dataset" json:"dataset"`
	Tool        ToolInfo   `yaml:"tool" json:"tool"`
}

// DatasetRef points at the GEO series the project analyzes.
type DatasetRef struct {
	Accession string `yaml:"accession" json:"accession"`
	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
}

// ToolInfo records which scaffolder version wrote the manifest.
type ToolInfo struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}
