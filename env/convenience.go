package env

import (
	"github.com/mobiletools/buildenv/build"
)

var defaultResolver = &Resolver{}

// Gather resolves the merged environment mapping using a default Resolver.
func Gather(bc *build.Context) (map[string]string, error) {
	return defaultResolver.Gather(bc)
}

// GatherWithManifests resolves the merged environment mapping, including
// manifest files, using a default Resolver.
func GatherWithManifests(bc *build.Context) (map[string]string, error) {
	return defaultResolver.GatherWithManifests(bc)
}

// Secrets extracts de-prefixed secrets using a default Resolver.
func Secrets(bc *build.Context, knownPrefix string) (map[string]string, error) {
	return defaultResolver.Secrets(bc, knownPrefix)
}
