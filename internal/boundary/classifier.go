// Package boundary decides whether a transcript segment announces a new
// chapter. Classification is a text heuristic over ASR output: a keyword
// followed by a spelled-out or numeric chapter number, unless the text only
// mentions a chapter in passing.
package boundary

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const wordPlaceholder = "{word}"

// Classifier holds the compiled rule table. It is safe for concurrent use.
type Classifier struct {
	deny    []*regexp.Regexp
	heading *regexp.Regexp
}

// New compiles rules into a Classifier.
func New(rules Rules) (*Classifier, error) {
	keyword := strings.TrimSpace(rules.Keyword)
	if keyword == "" {
		return nil, errors.New("boundary rules: keyword is required")
	}

	words := appendUnique(nil, rules.NumberWords...)
	// Longest first so "twenty-one" wins over "twenty".
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	alternatives := make([]string, 0, len(words)+1)
	for _, w := range words {
		alternatives = append(alternatives, regexp.QuoteMeta(w))
	}
	alternatives = append(alternatives, `\d+`)

	heading, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\s+(?:` + strings.Join(alternatives, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile heading pattern: %w", err)
	}

	c := &Classifier{heading: heading}
	for _, phrase := range appendUnique(nil, rules.DenyPhrases...) {
		re, err := compileDenyPhrase(phrase)
		if err != nil {
			return nil, fmt.Errorf("compile deny phrase %q: %w", phrase, err)
		}
		c.deny = append(c.deny, re)
	}
	return c, nil
}

// Default builds a Classifier from the built-in rules.
func Default() (*Classifier, error) {
	rules, err := DefaultRules()
	if err != nil {
		return nil, err
	}
	return New(rules)
}

func compileDenyPhrase(phrase string) (*regexp.Regexp, error) {
	parts := strings.Split(strings.ToLower(phrase), wordPlaceholder)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile(`(?i)` + strings.Join(parts, `\w+`))
}

// IsChapterBoundary reports whether text starts a new chapter. Deny phrases
// take priority over the heading pattern.
func (c *Classifier) IsChapterBoundary(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, re := range c.deny {
		if re.MatchString(text) {
			return false
		}
	}
	return c.heading.MatchString(text)
}
