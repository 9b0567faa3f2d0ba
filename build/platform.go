package build

import "strings"

// Platform identifies the target platform of a build.
type Platform string

// Supported target platforms.
const (
	// Android targets Android devices.
	Android Platform = "android"

	// IOS targets iOS devices.
	IOS Platform = "ios"

	// UWP targets the Universal Windows Platform.
	UWP Platform = "uwp"

	// MacOS targets desktop macOS.
	MacOS Platform = "macos"

	// Tizen targets Tizen devices.
	Tizen Platform = "tizen"

	// Unsupported is any platform without dedicated prefix conventions.
	// Resolution falls back to the generic prefixes for it.
	Unsupported Platform = "unsupported"
)

// Recognized reports whether the platform has dedicated prefix conventions.
func (p Platform) Recognized() bool {
	switch p {
	case Android, IOS, UWP, MacOS, Tizen:
		return true
	}
	return false
}

// ParsePlatform maps a platform name to a Platform. Matching is
// case-insensitive and accepts the common framework spellings
// (e.g. "MonoAndroid", "Xamarin.iOS"). Unknown names map to Unsupported.
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "android", "monoandroid", "xamarin.android":
		return Android
	case "ios", "xamarin.ios":
		return IOS
	case "uwp", "windows", "win":
		return UWP
	case "macos", "mac", "xamarin.mac", "maccatalyst":
		return MacOS
	case "tizen":
		return Tizen
	}
	return Unsupported
}
