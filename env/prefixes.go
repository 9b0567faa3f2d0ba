package env

import (
	"github.com/mobiletools/buildenv/build"
)

// Prefix conventions identifying secret and manifest keys in the
// environment. These are fixed; the only extension point is the optional
// caller-supplied known prefix accepted by Secrets and ManifestPrefixes.
const (
	// DefaultSecretPrefix marks generic secrets without a platform affinity.
	DefaultSecretPrefix = "BuildTools_"

	// LegacySecretPrefix is the older generic convention, still honored
	// for projects that predate DefaultSecretPrefix.
	LegacySecretPrefix = "Secret_"

	// SharedSecretPrefix marks secrets shared across every platform.
	SharedSecretPrefix = "SharedSecret_"

	// PlatformSecretPrefix marks secrets meant for whichever recognized
	// platform is currently building.
	PlatformSecretPrefix = "PlatformSecret_"

	// DefaultManifestPrefix marks values for manifest token substitution.
	DefaultManifestPrefix = "Manifest_"

	// BuildToolsManifestPrefix is the manifest variant of
	// DefaultSecretPrefix, accepted when secret prefixes are reused in a
	// manifest context.
	BuildToolsManifestPrefix = "BuildToolsManifest_"
)

// Per-platform conventions, built once at process start so every call site
// agrees on the same registry.
var (
	platformSecretPrefixes = map[build.Platform]string{
		build.Android: "DroidSecret_",
		build.IOS:     "iOSSecret_",
		build.UWP:     "UWPSecret_",
		build.MacOS:   "MacSecret_",
		build.Tizen:   "TizenSecret_",
	}

	platformManifestPrefixes = map[build.Platform]string{
		build.Android: "DroidManifest_",
		build.IOS:     "iOSManifest_",
		build.UWP:     "UWPManifest_",
		build.MacOS:   "MacManifest_",
		build.Tizen:   "TizenManifest_",
	}
)

// PlatformSecretPrefixes returns the secret prefixes specific to the
// platform. Recognized platforms have exactly one; anything else falls back
// to the generic default and legacy prefixes.
func PlatformSecretPrefixes(platform build.Platform) []string {
	if prefix, ok := platformSecretPrefixes[platform]; ok {
		return []string{prefix}
	}
	return []string{DefaultSecretPrefix, LegacySecretPrefix}
}

// SecretPrefixes returns the ordered prefix set used for secret scanning:
// the platform prefixes, the cross-platform shared prefix, and (for
// recognized platforms) the platform-agnostic PlatformSecretPrefix.
// When forceIncludeDefault is set and the default prefix is not already in
// the set, the default prefix and its manifest variant are appended so the
// set can serve a manifest context as well.
func SecretPrefixes(platform build.Platform, forceIncludeDefault bool) []string {
	prefixes := PlatformSecretPrefixes(platform)
	prefixes = append(prefixes, SharedSecretPrefix)
	if platform.Recognized() {
		prefixes = append(prefixes, PlatformSecretPrefix)
	}
	if forceIncludeDefault && !containsString(prefixes, DefaultSecretPrefix) {
		prefixes = append(prefixes, DefaultSecretPrefix, BuildToolsManifestPrefix)
	}
	return prefixes
}

// ManifestPrefixes returns the ordered prefix set used for manifest token
// substitution. It is the broad secret set plus the default manifest
// prefix, the caller's known prefix (if any), and the platform-specific
// manifest prefix (if the platform has one).
func ManifestPrefixes(platform build.Platform, knownPrefix string) []string {
	prefixes := SecretPrefixes(platform, true)
	prefixes = append(prefixes, DefaultManifestPrefix)
	if knownPrefix != "" {
		prefixes = append(prefixes, knownPrefix)
	}
	if prefix, ok := platformManifestPrefixes[platform]; ok {
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
