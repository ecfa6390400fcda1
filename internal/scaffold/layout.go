package scaffold

import (
	_ "embed"
	"os"
)

//go:embed assets/README.md
var readmeBytes []byte

//go:embed assets/module_stub.py
var moduleStubBytes []byte

// File and directory name constants for the project convention.
const (
	MarkerName = ".gitkeep"
	StubName   = "__init__.py"
	ReadmeName = "README.md"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Dir is one directory in the project layout. Path is slash-separated and
// relative to the base path.
type Dir struct {
	Path    string
	Purpose string
}

// Layout is the desired project tree, as pure data. Apply consumes it; tests
// and the tree command read it without touching the filesystem.
type Layout struct {
	Dirs       []Dir
	MarkerName string // zero-byte file keeping empty dirs under version control
	StubPath   string // written only if absent
	Stub       []byte
	ReadmePath string // rewritten on every Apply
	Readme     []byte
}

// DefaultLayout returns the fixed scRNA-seq project layout.
func DefaultLayout() Layout {
	return Layout{
		Dirs: []Dir{
			{Path: "data/raw", Purpose: "Raw data: count matrices, original h5ad files"},
			{Path: "data/processed", Purpose: "Processed data: post-QC AnnData objects"},
			{Path: "notebooks", Purpose: "Jupyter notebooks for analysis"},
			{Path: "results/figures", Purpose: "High-quality figures for publication"},
			{Path: "results/tables", Purpose: "Result tables (DEGs, markers)"},
			{Path: "src", Purpose: "Python modules with helper functions"},
		},
		MarkerName: MarkerName,
		StubPath:   "src/" + StubName,
		Stub:       moduleStubBytes,
		ReadmePath: ReadmeName,
		Readme:     readmeBytes,
	}
}
