package boundary

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Rules is the data table the classifier is built from.
type Rules struct {
	Version     int      `yaml:"version"`
	Keyword     string   `yaml:"keyword"`
	NumberWords []string `yaml:"number_words"`
	DenyPhrases []string `yaml:"deny_phrases"`
}

// DefaultRules returns the built-in rule table.
func DefaultRules() (Rules, error) {
	return parseRules(defaultRules)
}

// LoadRules reads a rule table from a YAML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	rules, err := parseRules(data)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

func parseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	return rules, nil
}

// Merge returns r extended with other. A non-empty keyword in other replaces
// r's keyword; number words and deny phrases are appended without duplicates.
func (r Rules) Merge(other Rules) Rules {
	merged := Rules{
		Version:     max(r.Version, other.Version),
		Keyword:     r.Keyword,
		NumberWords: appendUnique(nil, r.NumberWords...),
		DenyPhrases: appendUnique(nil, r.DenyPhrases...),
	}
	if strings.TrimSpace(other.Keyword) != "" {
		merged.Keyword = other.Keyword
	}
	merged.NumberWords = appendUnique(merged.NumberWords, other.NumberWords...)
	merged.DenyPhrases = appendUnique(merged.DenyPhrases, other.DenyPhrases...)
	return merged
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst)+len(values))
	for _, v := range dst {
		seen[strings.ToLower(v)] = true
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, v)
	}
	return dst
}
