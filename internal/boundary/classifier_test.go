package boundary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Classifier {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestIsChapterBoundary(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		text string
		want bool
	}{
		{"Chapter One begins", true},
		{"Chapter twenty-two: The Reckoning", true},
		{"chapter 7", true},
		{"  CHAPTER FIFTY. The end", true},
		{"Now, Chapter 12 and chapter 13", true},
		{"Chapter\tnine", true},
		{"as mentioned in chapter five, we saw...", false},
		{"As discussed in Chapter three, the plan failed", false},
		{"This was discussed in the chapter about dogs", false},
		{"We covered this in the next chapter", false},
		{"Chapter summary for chapter 3", false},
		{"Chapter", false},
		{"Chapters 1 through 3", false},
		{"Chapter zero", false},
		{"Chapter onward", false},
		{"", false},
		{"   ", false},
		{"Some ordinary sentence.", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsChapterBoundary(tt.text))
		})
	}
}

func TestIsChapterBoundaryIsPure(t *testing.T) {
	c := newDefault(t)
	for range 3 {
		assert.True(t, c.IsChapterBoundary("Chapter Four"))
		assert.False(t, c.IsChapterBoundary("end of chapter four"))
	}
}

func TestDenyPhraseWildcard(t *testing.T) {
	c, err := New(Rules{
		Keyword:     "Chapter",
		DenyPhrases: []string{"discussed in {word} chapter"},
	})
	require.NoError(t, err)

	assert.False(t, c.IsChapterBoundary("as discussed in this chapter 4 text"))
	assert.True(t, c.IsChapterBoundary("discussed in chapter 4"))
}

func TestNewRequiresKeyword(t *testing.T) {
	_, err := New(Rules{NumberWords: []string{"one"}})
	assert.Error(t, err)
}

func TestRulesMerge(t *testing.T) {
	base, err := DefaultRules()
	require.NoError(t, err)
	assert.Len(t, base.NumberWords, 50)

	merged := base.Merge(Rules{
		NumberWords: []string{"fifty-one", "One"},
		DenyPhrases: []string{"chapter recap"},
	})
	assert.Equal(t, "Chapter", merged.Keyword)
	assert.Len(t, merged.NumberWords, 51)
	assert.Contains(t, merged.DenyPhrases, "chapter recap")
	assert.Len(t, base.DenyPhrases, 15)

	c, err := New(merged)
	require.NoError(t, err)
	assert.True(t, c.IsChapterBoundary("Chapter fifty-one"))
	assert.False(t, c.IsChapterBoundary("Chapter recap: chapter 2"))

	renamed := base.Merge(Rules{Keyword: "Part"})
	c, err = New(renamed)
	require.NoError(t, err)
	assert.True(t, c.IsChapterBoundary("Part three"))
	assert.False(t, c.IsChapterBoundary("Chapter three"))
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deny_phrases:\n  - chapter quiz\n"), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"chapter quiz"}, rules.DenyPhrases)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
