package monero

import "fmt"

// ErrMissingWord reports a phrase whose word count is 2 mod 3 — one word
// short of a complete 3-word data chunk.
var ErrMissingWord = fmt.Errorf("monero: phrase is missing a word")

// ErrMissingChecksumWord reports a phrase whose word count is a multiple of
// 3 — no trailing checksum word was appended.
var ErrMissingChecksumWord = fmt.Errorf("monero: phrase is missing its checksum word")

// InvalidDecodingError reports a 3-word chunk whose decoded integer fails
// the x mod L == w1 self-consistency check.
type InvalidDecodingError struct {
	ChunkIndex int
}

func (e *InvalidDecodingError) Error() string {
	return fmt.Sprintf("monero: invalid decoding in word chunk %d", e.ChunkIndex)
}

// InvalidChecksumWordError reports a checksum word that does not match the
// recomputed checksum, compared via trimmed-prefix equality.
type InvalidChecksumWordError struct {
	Expected string
	Found    string
}

func (e *InvalidChecksumWordError) Error() string {
	return fmt.Sprintf("monero: invalid checksum word, expected %q, found %q", e.Expected, e.Found)
}
