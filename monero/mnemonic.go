// Package monero implements the Monero 25-word mnemonic: a custom base-1626
// group codec over a wordlist, with a trimmed-prefix comparison rule and a
// CRC-32-indexed checksum word appended to the phrase.
package monero

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
)

// wordlistLength is L, the fixed length every Monero wordlist is defined
// against; it is independent of the concrete Wordlist implementation's own
// Len().
const wordlistLength = 1626

// Mnemonic is a 32-byte seed paired with the wordlist it encodes against.
type Mnemonic struct {
	Seed     [32]byte
	Wordlist Wordlist
}

// New draws 32 bytes of entropy from rng and returns the corresponding
// mnemonic. rng is caller-supplied and never retained.
func New(rng io.Reader, wordlist Wordlist) (*Mnemonic, error) {
	var seed [32]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return nil, fmt.Errorf("monero: reading randomness: %w", err)
	}
	return &Mnemonic{Seed: seed, Wordlist: wordlist}, nil
}

// FromPrivateSpendKey wraps an existing 32-byte private spend key as a
// mnemonic without re-drawing entropy.
func FromPrivateSpendKey(key [32]byte, wordlist Wordlist) *Mnemonic {
	return &Mnemonic{Seed: key, Wordlist: wordlist}
}

// FromPhrase decodes a 25-word (24 data + 1 checksum) phrase into its seed.
func FromPhrase(phrase string, wordlist Wordlist) (*Mnemonic, error) {
	words := strings.Split(phrase, " ")

	switch len(words) % 3 {
	case 2:
		return nil, ErrMissingWord
	case 0:
		return nil, ErrMissingChecksumWord
	}

	dataWords := words[:len(words)-1]
	checksumWord := words[len(words)-1]

	buffer := make([]byte, 0, 32)
	for chunkIdx := 0; chunkIdx*3 < len(dataWords); chunkIdx++ {
		chunk := dataWords[chunkIdx*3 : chunkIdx*3+3]

		w1, err := wordlist.GetIndexTrimmed(chunk[0])
		if err != nil {
			return nil, err
		}
		w2, err := wordlist.GetIndexTrimmed(chunk[1])
		if err != nil {
			return nil, err
		}
		w3, err := wordlist.GetIndexTrimmed(chunk[2])
		if err != nil {
			return nil, err
		}

		const n = wordlistLength
		x := w1 + n*(((n-w1)+w2)%n) + n*n*(((n-w2)+w3)%n)
		if x%n != w1 {
			return nil, &InvalidDecodingError{ChunkIndex: chunkIdx}
		}

		var le [4]byte
		binary.LittleEndian.PutUint32(le[:], uint32(x))
		buffer = append(buffer, le[:]...)
	}

	expectedChecksum := checksumWord(dataWords, wordlist)
	if wordlist.ToTrimmed(expectedChecksum) != wordlist.ToTrimmed(checksumWord) {
		return nil, &InvalidChecksumWordError{
			Expected: wordlist.ToTrimmed(expectedChecksum),
			Found:    wordlist.ToTrimmed(checksumWord),
		}
	}

	var seed [32]byte
	copy(seed[:], buffer)
	return &Mnemonic{Seed: seed, Wordlist: wordlist}, nil
}

// ToPhrase encodes the mnemonic's seed — first reduced mod ℓ as an Ed25519
// scalar — into its 25-word phrase.
func (m *Mnemonic) ToPhrase() (string, error) {
	reduced := reduceScalarMod32LE(m.Seed)

	words := make([]string, 0, 24)
	for i := 0; i < 8; i++ {
		x := binary.LittleEndian.Uint32(reduced[i*4 : i*4+4])

		const n = wordlistLength
		w1 := int(x) % n
		w2 := (int(x)/n + w1) % n
		w3 := (int(x)/n/n + w2) % n

		word1, err := m.Wordlist.Get(w1)
		if err != nil {
			return "", err
		}
		word2, err := m.Wordlist.Get(w2)
		if err != nil {
			return "", err
		}
		word3, err := m.Wordlist.Get(w3)
		if err != nil {
			return "", err
		}
		words = append(words, word1, word2, word3)
	}

	words = append(words, checksumWord(words, m.Wordlist))
	return strings.Join(words, " "), nil
}

// checksumWord computes the checksum word for a set of 24 data words: CRC-
// 32/IEEE over the concatenation of their trimmed prefixes, indexing back
// into the (untrimmed) words by crc mod len(words).
func checksumWord(words []string, wordlist Wordlist) string {
	var trimmed strings.Builder
	for _, w := range words {
		trimmed.WriteString(wordlist.ToTrimmed(w))
	}
	sum := crc32.ChecksumIEEE([]byte(trimmed.String()))
	return words[int(sum)%len(words)]
}

// VerifyPhrase reports whether phrase decodes successfully against
// wordlist.
func VerifyPhrase(phrase string, wordlist Wordlist) bool {
	_, err := FromPhrase(phrase, wordlist)
	return err == nil
}
