// Package config manages user-level settings stored at ~/.scproj/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the author name stamped into generated project manifests.
package config
