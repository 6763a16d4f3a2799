package termtrie

import (
	"io"
	"sort"
	"sync"
)

// Trie is a prefix tree keyed by word tokens rather than by characters. It is
// built once from a set of terms and then scanned against tokenized text to
// count how often each term occurs.
type Trie struct {
	root      *node
	mu        sync.RWMutex
	tokenizer *Tokenizer
	// terms holds every raw string passed to Insert that produced at least
	// one token, so scan results can report zero counts for all of them.
	terms map[string]struct{}
}

// node is a node in a Trie which contains a map of tokens to more node pointers.
// If term is non-empty, this indicates that the node ends a complete term.
type node struct {
	children map[string]*node
	term     string
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// New creates a new empty trie with the default tokenizer.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.tokenizer = NewTokenizer()
	t.terms = make(map[string]struct{})
	return t
}

// WithTokenizer sets the tokenizer used for both term insertion and text
// scanning. Terms and text must go through the same tokenizer or terms
// silently fail to match, so call this before any Insert.
func (t *Trie) WithTokenizer(tk *Tokenizer) *Trie {
	t.tokenizer = tk
	return t
}

// Insert adds terms to the trie. A term that tokenizes to nothing is
// ignored. Re-inserting a term is idempotent; when two distinct raw strings
// tokenize to the same sequence, matches are credited to the first one
// inserted, but both appear in scan results.
func (t *Trie) Insert(terms ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, term := range terms {
		t.insertInternal(term)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(term string) {
	tokens := t.tokenizer.Tokenize(term)
	if len(tokens) == 0 {
		return
	}
	currentNode := t.root
	for _, token := range tokens {
		child, ok := currentNode.children[token]
		if !ok {
			child = newNode()
			currentNode.children[token] = child
		}
		currentNode = child
	}
	if currentNode.term == "" {
		currentNode.term = term
	}
	t.terms[term] = struct{}{}
}

// Terms returns every inserted term in lexical order.
func (t *Trie) Terms() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	terms := make([]string, 0, len(t.terms))
	for term := range t.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Len returns the number of inserted terms.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.terms)
}

// Scan walks the token sequence once, left to right, and returns a frequency
// map from term to occurrence count. Every inserted term is present in the
// result, including terms that never matched.
//
// The scanner keeps a set of active pointers, one per partial match ending at
// the current position. Each token starts a fresh pointer at the root and
// advances every pointer through the matching child, dropping pointers that
// have none. A pointer landing on a term-final node counts a match and stays
// active, so a term that is a prefix of a longer term ("new" and "new york")
// registers both. Scans never mutate trie structure and are safe to run
// concurrently against the same trie.
func (t *Trie) Scan(tokens []string) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	counts := t.zeroCounts()
	var pointers []*node
	for _, token := range tokens {
		pointers = t.advance(pointers, token, counts)
	}
	return counts
}

// ScanText tokenizes text and scans it.
func (t *Trie) ScanText(text string) map[string]int {
	return t.Scan(t.tokenizer.Tokenize(text))
}

// ScanReader scans tokens lazily from r, so a large text never needs to be
// held in memory. The only possible error is an I/O error from r.
func (t *Trie) ScanReader(r io.Reader) (map[string]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	counts := t.zeroCounts()
	stream := t.tokenizer.Reader(r)
	var pointers []*node
	for {
		token, err := stream.Next()
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return nil, err
		}
		pointers = t.advance(pointers, token, counts)
	}
}

// advance moves every active pointer, plus a fresh one at the root, through
// the child labeled with token. Pointers without such a child are dropped.
// Landing on a term-final node increments that term's count.
func (t *Trie) advance(pointers []*node, token string, counts map[string]int) []*node {
	pointers = append(pointers, t.root)
	next := pointers[:0]
	for _, p := range pointers {
		child, ok := p.children[token]
		if !ok {
			continue
		}
		if child.term != "" {
			counts[child.term]++
		}
		next = append(next, child)
	}
	return next
}

func (t *Trie) zeroCounts() map[string]int {
	counts := make(map[string]int, len(t.terms))
	for term := range t.terms {
		counts[term] = 0
	}
	return counts
}
