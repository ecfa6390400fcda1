// Package cli defines the Cobra command tree for the scproj CLI. Each file
// in this package registers one top-level command (init, tree, doctor, etc.)
// with the root command. Command implementations delegate to internal packages
// for scaffolding logic and only handle flag parsing and I/O formatting.
package cli
