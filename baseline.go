package termtrie

import "strings"

// Count searches tokens for every term with a plain sliding window instead
// of a trie. It produces the same frequency map as Trie.Scan over the same
// tokenizer and is kept as a reference implementation to compare the trie
// against, both for correctness and for speed.
func Count(terms []string, tokens []string) map[string]int {
	tk := NewTokenizer()
	counts := make(map[string]int, len(terms))
	seen := make(map[string]bool, len(terms))
	var labels []string
	var sequences [][]string
	for _, term := range terms {
		sequence := tk.Tokenize(term)
		if len(sequence) == 0 {
			continue
		}
		counts[term] = 0
		// duplicate sequences are credited to the first term, like the trie
		key := strings.Join(sequence, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		labels = append(labels, term)
		sequences = append(sequences, sequence)
	}
	for i, sequence := range sequences {
		n := 0
		for at := 0; at+len(sequence) <= len(tokens); at++ {
			if sequenceAt(tokens, at, sequence) {
				n++
			}
		}
		counts[labels[i]] = n
	}
	return counts
}

// CountText tokenizes text and counts with the sliding window.
func CountText(terms []string, text string) map[string]int {
	return Count(terms, NewTokenizer().Tokenize(text))
}

func sequenceAt(tokens []string, at int, sequence []string) bool {
	for i, token := range sequence {
		if tokens[at+i] != token {
			return false
		}
	}
	return true
}
