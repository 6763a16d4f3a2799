package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	termsPath := writeFile(t, dir, "terms.txt", "new york\nthe cat\nquantum\n")
	textPath := writeFile(t, dir, "text.txt",
		"The cat moved to New York. The cat liked New York.\n")

	t.Run("trie search", func(t *testing.T) {
		cmd := newSearchCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--terms", termsPath, textPath})
		assert.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "new york")
		assert.Contains(t, out.String(), "2")
		assert.Contains(t, out.String(), "quantum")
	})

	t.Run("naive matches trie", func(t *testing.T) {
		cfg := &Config{TermsFile: termsPath, TextFiles: []string{textPath}}
		terms, err := readTermFile(termsPath)
		assert.NoError(t, err)
		trieCounts, err := runSearch(cfg, terms)
		assert.NoError(t, err)

		cfg.Naive = true
		naiveCounts, err := runSearch(cfg, terms)
		assert.NoError(t, err)
		assert.Equal(t, trieCounts, naiveCounts)
		assert.Equal(t, 2, trieCounts["new york"])
		assert.Equal(t, 0, trieCounts["quantum"])
	})

	t.Run("counts sum across files", func(t *testing.T) {
		other := writeFile(t, dir, "more.txt", "the cat again\n")
		cfg := &Config{TermsFile: termsPath, TextFiles: []string{textPath, other}}
		terms, err := readTermFile(termsPath)
		assert.NoError(t, err)
		counts, err := runSearch(cfg, terms)
		assert.NoError(t, err)
		assert.Equal(t, 3, counts["the cat"])
	})

	t.Run("hide zero", func(t *testing.T) {
		cmd := newSearchCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--terms", termsPath, "--hide-zero", textPath})
		assert.NoError(t, cmd.Execute())
		assert.NotContains(t, out.String(), "quantum")
	})

	t.Run("missing term list", func(t *testing.T) {
		cmd := newSearchCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{textPath})
		assert.Error(t, cmd.Execute())
	})

	t.Run("unreadable text file", func(t *testing.T) {
		cmd := newSearchCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--terms", termsPath, filepath.Join(dir, "missing.txt")})
		assert.Error(t, cmd.Execute())
	})
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads yaml", func(t *testing.T) {
		path := writeFile(t, dir, "config.yaml",
			"terms-file: terms.txt\ntext-files:\n  - a.txt\n  - b.txt\nhide-zero: true\n")
		cfg, err := loadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "terms.txt", cfg.TermsFile)
		assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.TextFiles)
		assert.True(t, cfg.HideZero)
		assert.False(t, cfg.Naive)
	})

	t.Run("empty path yields empty config", func(t *testing.T) {
		cfg, err := loadConfig("")
		assert.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "terms-file: [oops\n")
		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}
