package monero

import "fmt"

// Wordlist is the collaborator interface the mnemonic codec consumes:
// indexed lookup plus prefix-trimming for the wordlist's defined prefix
// length. A real deployment swaps in an authentic per-language data table
// behind this interface; only the word data is a collaborator concern, not
// the trimmed-prefix comparison rule it enables.
type Wordlist interface {
	// Len returns the wordlist length L.
	Len() int
	// Get returns the word at index, or an error if out of range.
	Get(index int) (string, error)
	// ToTrimmed returns word's canonical comparison key: its first
	// PrefixLength UTF-8 characters.
	ToTrimmed(word string) string
	// GetIndexTrimmed resolves a (possibly already-trimmed) prefix to its
	// canonical index, relying on prefix-uniqueness within the wordlist.
	GetIndexTrimmed(prefix string) (int, error)
	// PrefixLength returns the language-specific trimmed-prefix length.
	PrefixLength() int
}

// UnknownWordError reports a trimmed prefix with no match in the wordlist.
type UnknownWordError struct {
	Prefix string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("monero: unknown word prefix %q", e.Prefix)
}

// English is the package's built-in wordlist, passed explicitly to New,
// FromPrivateSpendKey and FromPhrase: 1626 entries, 3-character trimmed
// prefixes.
type English struct{}

const englishPrefixLength = 3

var englishIndexByTrimmedPrefix = buildTrimmedIndex(englishWords[:], englishPrefixLength)

func buildTrimmedIndex(words []string, prefixLen int) map[string]int {
	idx := make(map[string]int, len(words))
	for i, w := range words {
		key := trim(w, prefixLen)
		if _, dup := idx[key]; dup {
			panic(fmt.Sprintf("monero: wordlist prefix %q is not unique (precondition violated)", key))
		}
		idx[key] = i
	}
	return idx
}

func trim(word string, prefixLen int) string {
	runes := []rune(word)
	if len(runes) <= prefixLen {
		return word
	}
	return string(runes[:prefixLen])
}

// Len returns 1626.
func (English) Len() int { return len(englishWords) }

// PrefixLength returns 3.
func (English) PrefixLength() int { return englishPrefixLength }

// Get returns the word at index.
func (English) Get(index int) (string, error) {
	if index < 0 || index >= len(englishWords) {
		return "", fmt.Errorf("monero: wordlist index %d out of range", index)
	}
	return englishWords[index], nil
}

// ToTrimmed returns word's first 3 characters.
func (English) ToTrimmed(word string) string {
	return trim(word, englishPrefixLength)
}

// GetIndexTrimmed resolves prefix (trimmed or full) to its canonical index.
func (e English) GetIndexTrimmed(prefix string) (int, error) {
	key := trim(prefix, englishPrefixLength)
	idx, ok := englishIndexByTrimmedPrefix[key]
	if !ok {
		return 0, &UnknownWordError{Prefix: prefix}
	}
	return idx, nil
}
