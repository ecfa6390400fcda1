// Package manifest handles the optional project.yaml written by
// "scproj init --manifest". It provides YAML load/save, validation against
// an embedded JSON Schema, and a semver comparison used by doctor to warn
// when a project was created by a newer scproj than the running binary.
package manifest
