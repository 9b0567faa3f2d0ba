// Package env resolves build-time environment variables and secrets.
//
// Resolution layers sources into a single mapping with first-writer-wins
// semantics: a key supplied by an earlier source is never replaced by a
// later one. The layering order is fixed:
//
//  1. OS environment variables
//  2. Project secrets file (secrets.json)
//  3. Project secrets file for the active configuration (secrets.<Configuration>.json)
//  4. Solution secrets file
//  5. Solution secrets file for the active configuration
//  6. Project and solution manifest files (only when requested)
//  7. Environment settings declared in the tool configuration
//
// Secret extraction scans the OS environment for keys carrying platform
// prefix conventions (e.g. DroidSecret_ApiKey for Android) and strips the
// prefix from the returned key names:
//
//	secrets, err := env.Secrets(buildCtx, "")
//	// DroidSecret_ApiKey=42 in the environment yields secrets["ApiKey"] == "42"
//
// Missing secrets and manifest files are skipped silently; malformed JSON
// in an existing file fails the resolution call. Nothing is cached: every
// call re-reads the OS environment and every candidate file.
package env
