package updater

import (
	"fmt"
	"regexp"
	"sync"
)

var (
	versionRe = regexp.MustCompile(`^` + valueClass + `+$`)

	keyPatternsMu sync.Mutex
	keyPatterns   = map[string]*regexp.Regexp{}
)

// ValidVersion reports whether v consists only of letters, digits, '.', '-' and ':'.
func ValidVersion(v string) bool {
	return versionRe.MatchString(v)
}

// KeyPattern returns the regexp matching an assignment of key to an
// in-class value. The match is not anchored to the start of the line.
func KeyPattern(key string) *regexp.Regexp {
	keyPatternsMu.Lock()
	defer keyPatternsMu.Unlock()

	if re, ok := keyPatterns[key]; ok {
		return re
	}
	re := regexp.MustCompile(fmt.Sprintf(`(?m)%s=%s+`, regexp.QuoteMeta(key), valueClass))
	keyPatterns[key] = re
	return re
}

// Rewrite replaces every value assigned to key in content with version and
// returns the new content together with the number of replacements.
// Content without a match is returned unchanged.
func Rewrite(content []byte, key, version string) ([]byte, int) {
	re := KeyPattern(key)
	matches := len(re.FindAllIndex(content, -1))
	if matches == 0 {
		return content, 0
	}
	return re.ReplaceAllLiteral(content, []byte(key+"="+version)), matches
}
