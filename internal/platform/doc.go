// Package platform provides cross-platform filesystem helpers. On Unix it
// applies permission bits directly; on Windows, where Unix-style modes do
// not exist, the operations degrade to no-ops.
package platform
