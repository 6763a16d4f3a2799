/*
Package termtrie searches a body of text for occurrences of a predefined set
of multi-word terms. Terms are stored in a trie keyed by word rather than by
character, and a single left-to-right pass over the tokenized text finds
every occurrence, including terms that are token-prefixes of longer terms
and terms that overlap in the text. The result of a scan is a frequency map
from the original term string to its occurrence count.
*/
package termtrie
