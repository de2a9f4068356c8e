package splitter

import (
	"fmt"
	"strings"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/config"
)

// DefaultTitleMaxLen caps sanitized titles in file names.
const DefaultTitleMaxLen = 45

// SanitizeTitle replaces every rune outside [A-Za-z0-9_.- ] with '_' and
// keeps at most maxLen runes.
func SanitizeTitle(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultTitleMaxLen
	}

	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == maxLen {
			break
		}
		if !allowedRune(r) {
			r = '_'
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == '-', r == ' ':
		return true
	default:
		return false
	}
}

// FileName returns the output file name for ch.
func FileName(ch chapter.Chapter, naming, ext string, maxLen int) string {
	if naming == config.NamingNumber {
		return fmt.Sprintf("Chapter %02d.%s", ch.Index, ext)
	}
	return fmt.Sprintf("%02d_%s.%s", ch.Index, SanitizeTitle(ch.Name, maxLen), ext)
}
