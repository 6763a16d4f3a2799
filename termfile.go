package termtrie

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// LoadTerms reads a line-separated term list, one term per line, trimming
// surrounding whitespace and skipping blank lines. The only possible error
// is an I/O error from r.
func LoadTerms(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var terms []string
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read term list")
	}
	return terms, nil
}
