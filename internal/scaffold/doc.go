// Package scaffold materializes the fixed directory layout of an scRNA-seq
// analysis project. The desired tree is plain data (see Layout); Apply turns
// it into directories, .gitkeep markers, the src/__init__.py helper-module
// stub, and the project README. Check verifies an existing project and can
// repair missing pieces.
package scaffold
