package termtrie

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer normalises raw text into an ordered sequence of lowercase word
// tokens. Input is split on whitespace, each unit is stripped of leading and
// trailing non-alphanumeric characters and lowercased, and units that become
// empty are discarded. Internal punctuation survives, so "dog's" is one
// token. The same tokenizer must be applied to terms and to searched text.
type Tokenizer struct {
	folding bool
}

// NewTokenizer creates a tokenizer with diacritic folding off.
func NewTokenizer() *Tokenizer {
	return new(Tokenizer)
}

// WithFolding sets the tokenizer to strip diacritics, so "Zürich" and
// "Zurich" produce the same token.
func (tk *Tokenizer) WithFolding() *Tokenizer {
	tk.folding = true
	return tk
}

// WithoutFolding sets the tokenizer not to strip diacritics.
func (tk *Tokenizer) WithoutFolding() *Tokenizer {
	tk.folding = false
	return tk
}

// Tokenize returns the token sequence for text. Any input, including the
// empty string, yields a possibly empty sequence; it never fails.
func (tk *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := tk.normalise(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Reader returns a lazy token stream over r for texts too large to hold in
// memory.
func (tk *Tokenizer) Reader(r io.Reader) *TokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &TokenReader{tk: tk, scanner: scanner}
}

// normalise reduces one whitespace-delimited unit to a token, or to "" when
// nothing alphanumeric remains.
func (tk *Tokenizer) normalise(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if word == "" {
		return ""
	}
	if tk.folding {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if folded, _, err := transform.String(transformer, word); err == nil {
			word = folded
		}
	}
	return strings.ToLower(word)
}

// TokenReader yields tokens one at a time from an underlying reader.
type TokenReader struct {
	tk      *Tokenizer
	scanner *bufio.Scanner
}

// Next returns the next token. It returns io.EOF once the stream is
// exhausted, or the underlying reader's error.
func (s *TokenReader) Next() (string, error) {
	for s.scanner.Scan() {
		if token := s.tk.normalise(s.scanner.Text()); token != "" {
			return token, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
