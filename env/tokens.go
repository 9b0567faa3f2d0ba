package env

import "regexp"

// Manifest template tokens look like $TokenName$.
var tokenPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)\$`)

// ReplaceTokens substitutes $Token$ occurrences in content using values.
// Each token is looked up first by its bare name and then under every
// prefix in order (prefix + token). Tokens with no matching value are left
// untouched so a later templating pass can still see them.
func ReplaceTokens(content string, values map[string]string, prefixes []string) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(match string) string {
		token := match[1 : len(match)-1]
		if value, ok := values[token]; ok {
			return value
		}
		for _, prefix := range prefixes {
			if value, ok := values[prefix+token]; ok {
				return value
			}
		}
		return match
	})
}
