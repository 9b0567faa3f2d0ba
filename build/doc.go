// Package build defines the build context passed between pipeline steps.
//
// A Context describes one build invocation: where the project and solution
// live on disk, which named configuration is active (e.g. Debug or Release),
// and which target platform is being built. The optional tool configuration
// (see the config package) rides along on the context so steps that need the
// declared environment defaults can reach them without re-reading the file.
package build
