package termtrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Run("sliding window counts", func(t *testing.T) {
		tokens := NewTokenizer().Tokenize("the cat sat. the cat ran. a dog.")
		counts := Count([]string{"the cat", "dog", "bird"}, tokens)
		assert.Equal(t, map[string]int{"the cat": 2, "dog": 1, "bird": 0}, counts)
	})

	t.Run("empty terms", func(t *testing.T) {
		assert.Empty(t, Count(nil, []string{"a", "b"}))
	})

	t.Run("terms that tokenize to nothing are skipped", func(t *testing.T) {
		counts := CountText([]string{"!!!", "cat"}, "a cat")
		assert.Equal(t, map[string]int{"cat": 1}, counts)
	})

	t.Run("duplicate sequences credit the first term", func(t *testing.T) {
		counts := CountText([]string{"New York", "new york."}, "new york")
		assert.Equal(t, map[string]int{"New York": 1, "new york.": 0}, counts)
	})
}

var benchTerms = []string{
	"new york", "new york city", "more corruption", "corruption laws",
	"the cat", "dog", "project", "project manager",
}

func benchText() string {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("The project manager moved to New York City. ")
		b.WriteString("More corruption laws meant the cat and the dog stayed. ")
	}
	return b.String()
}

func BenchmarkTrieScan(b *testing.B) {
	tr := New()
	tr.Insert(benchTerms...)
	tokens := NewTokenizer().Tokenize(benchText())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Scan(tokens)
	}
}

func BenchmarkCount(b *testing.B) {
	tokens := NewTokenizer().Tokenize(benchText())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(benchTerms, tokens)
	}
}
