package env

import (
	"testing"

	"github.com/mobiletools/buildenv/build"
)

func TestReplaceTokens_BareToken(t *testing.T) {
	values := map[string]string{"AppTitle": "Cool App"}

	got := ReplaceTokens(`<string name="title">$AppTitle$</string>`, values, nil)
	want := `<string name="title">Cool App</string>`
	if got != want {
		t.Errorf("ReplaceTokens() = %q, want %q", got, want)
	}
}

func TestReplaceTokens_PrefixedLookup(t *testing.T) {
	values := map[string]string{"Manifest_Version": "1.2.3"}
	prefixes := ManifestPrefixes(build.Android, "")

	got := ReplaceTokens("version=$Version$", values, prefixes)
	if got != "version=1.2.3" {
		t.Errorf("ReplaceTokens() = %q, want %q", got, "version=1.2.3")
	}
}

func TestReplaceTokens_BareBeatsPrefixed(t *testing.T) {
	values := map[string]string{
		"Version":          "bare",
		"Manifest_Version": "prefixed",
	}

	got := ReplaceTokens("$Version$", values, []string{"Manifest_"})
	if got != "bare" {
		t.Errorf("ReplaceTokens() = %q, want %q", got, "bare")
	}
}

func TestReplaceTokens_UnknownTokenUntouched(t *testing.T) {
	got := ReplaceTokens("keep $Unknown$ here", map[string]string{}, nil)
	if got != "keep $Unknown$ here" {
		t.Errorf("ReplaceTokens() = %q, want token left in place", got)
	}
}

func TestReplaceTokens_MultipleTokens(t *testing.T) {
	values := map[string]string{"Name": "App", "Id": "com.example.app"}

	got := ReplaceTokens("$Name$ ($Id$) $Name$", values, nil)
	if got != "App (com.example.app) App" {
		t.Errorf("ReplaceTokens() = %q", got)
	}
}
