package slug

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

const maxTitleLen = 80

// Latin letters, digits, Thai script, whitespace and hyphen survive; the rest
// is stripped before whitespace runs collapse into single hyphens.
var (
	disallowed = regexp.MustCompile(`[^a-z0-9\x{0E00}-\x{0E7F}\s-]+`)
	whitespace = regexp.MustCompile(`[\s-]+`)
)

var seq atomic.Uint32

// Make builds a URL-safe slug from a product title and appends a discriminator
// so repeated runs over similar titles never collide within one process. The
// catalog's unique constraint is the backstop against historical slugs.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if r := []rune(s); len(r) > maxTitleLen {
		s = strings.TrimRight(string(r[:maxTitleLen]), "-")
	}
	d := discriminator()
	if s == "" {
		return d
	}
	return s + "-" + d
}

// discriminator mixes wall-clock milliseconds with a process-local counter so
// two calls in the same millisecond still differ.
func discriminator() string {
	return fmt.Sprintf("%d%03d", time.Now().UnixMilli(), seq.Add(1)%1000)
}
