// Package common holds small shared helpers with no internal dependencies.
package common

import (
	"fmt"
	"strings"
	"unicode"
)

const maxSlugLen = 64

// Slugify converts input into a URL-safe slug: lowercase letters, digits and
// hyphens, no leading/trailing/consecutive hyphens. fallback is used when the
// input contains no usable characters.
func Slugify(input, fallback string) (string, error) {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		if fallback == "" {
			return "", fmt.Errorf("cannot build slug from %q", input)
		}
		slug = fallback
	}
	return slug, nil
}
