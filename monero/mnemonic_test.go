package monero

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndToPhraseWordCount(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	words := strings.Split(phrase, " ")
	require.Len(t, words, 25)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	decoded, err := FromPhrase(phrase, English{})
	require.NoError(t, err)

	require.Equal(t, reduceScalarMod32LE(m.Seed), decoded.Seed)
}

func TestDecodeEncodeReproducesPhrase(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	decoded, err := FromPhrase(phrase, English{})
	require.NoError(t, err)

	roundTripped, err := decoded.ToPhrase()
	require.NoError(t, err)
	require.Equal(t, phrase, roundTripped)
}

func TestFromPrivateSpendKeyDeterministic(t *testing.T) {
	var key [32]byte
	key[0] = 0x07

	m1 := FromPrivateSpendKey(key, English{})
	m2 := FromPrivateSpendKey(key, English{})

	phrase1, err := m1.ToPhrase()
	require.NoError(t, err)
	phrase2, err := m2.ToPhrase()
	require.NoError(t, err)

	require.Equal(t, phrase1, phrase2)
}

func TestVerifyPhraseAcceptsValidPhrase(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	require.True(t, VerifyPhrase(phrase, English{}))
}

func TestChecksumSensitivityToFlippedWord(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	words := strings.Split(phrase, " ")

	wordlist := English{}
	otherIndex := 0
	currentIndex, err := wordlist.GetIndexTrimmed(words[0])
	require.NoError(t, err)
	if currentIndex == 0 {
		otherIndex = 1
	}
	replacement, err := wordlist.Get(otherIndex)
	require.NoError(t, err)
	words[0] = replacement

	mutated := strings.Join(words, " ")
	require.False(t, VerifyPhrase(mutated, English{}))
}

func TestFromPhraseRejectsMissingWord(t *testing.T) {
	words := make([]string, 26)
	for i := range words {
		w, err := English{}.Get(i)
		require.NoError(t, err)
		words[i] = w
	}
	phrase := strings.Join(words, " ")

	_, err := FromPhrase(phrase, English{})
	require.ErrorIs(t, err, ErrMissingWord)
}

func TestFromPhraseRejectsMissingChecksumWord(t *testing.T) {
	words := make([]string, 24)
	for i := range words {
		w, err := English{}.Get(i)
		require.NoError(t, err)
		words[i] = w
	}
	phrase := strings.Join(words, " ")

	_, err := FromPhrase(phrase, English{})
	require.ErrorIs(t, err, ErrMissingChecksumWord)
}

func TestFromPhraseRejectsUnknownWord(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	words := strings.Split(phrase, " ")
	words[0] = "zzznotarealword"

	_, err = FromPhrase(strings.Join(words, " "), English{})
	require.Error(t, err)

	var unknown *UnknownWordError
	require.ErrorAs(t, err, &unknown)
}

func TestFromPhraseRejectsBadChecksumWord(t *testing.T) {
	m, err := New(rand.Reader, English{})
	require.NoError(t, err)

	phrase, err := m.ToPhrase()
	require.NoError(t, err)

	words := strings.Split(phrase, " ")

	wordlist := English{}
	checksumIdx, err := wordlist.GetIndexTrimmed(words[24])
	require.NoError(t, err)
	replacementIdx := (checksumIdx + 1) % wordlist.Len()
	replacement, err := wordlist.Get(replacementIdx)
	require.NoError(t, err)
	words[24] = replacement

	_, err = FromPhrase(strings.Join(words, " "), English{})
	require.Error(t, err)

	var badChecksum *InvalidChecksumWordError
	require.ErrorAs(t, err, &badChecksum)
}
