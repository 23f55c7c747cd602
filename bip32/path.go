package bip32

import (
	"strconv"
	"strings"
)

// DerivationPath is an ordered, possibly empty sequence of child indices,
// e.g. the path parsed from "m/44'/0'/0'/0/1".
type DerivationPath []ChildIndex

// MaxPathDepth bounds the number of segments a single parsed path may carry,
// matching the 8-bit depth field a derivation walks through.
const MaxPathDepth = 255

// ParsePath parses a BIP32 path string. The literal "m" denotes the empty
// path. Segments are separated by '/'; each segment is a decimal integer
// optionally suffixed with ' or h to mark Hardened. Leading/trailing
// whitespace anywhere in the string is rejected.
func ParsePath(s string) (DerivationPath, error) {
	if s != strings.TrimSpace(s) {
		return nil, &InvalidPathError{Path: s}
	}
	if s == "m" {
		return DerivationPath{}, nil
	}
	if !strings.HasPrefix(s, "m/") {
		return nil, &InvalidPathError{Path: s}
	}

	segments := strings.Split(s[2:], "/")
	if len(segments) > MaxPathDepth {
		return nil, &InvalidPathError{Path: s}
	}

	path := make(DerivationPath, 0, len(segments))
	for _, seg := range segments {
		index, err := parseSegment(seg)
		if err != nil {
			return nil, &InvalidPathError{Path: s}
		}
		path = append(path, index)
	}
	return path, nil
}

func parseSegment(seg string) (ChildIndex, error) {
	if seg == "" || seg != strings.TrimSpace(seg) {
		return ChildIndex{}, &InvalidPathError{Path: seg}
	}

	hardened := false
	numeric := seg
	switch last := seg[len(seg)-1]; last {
	case '\'', 'h', 'H':
		hardened = true
		numeric = seg[:len(seg)-1]
	}

	n, err := strconv.ParseUint(numeric, 10, 32)
	if err != nil || n >= uint64(HardenedOffset) {
		return ChildIndex{}, &InvalidPathError{Path: seg}
	}

	if hardened {
		return Hardened(uint32(n)), nil
	}
	return Normal(uint32(n)), nil
}

// String renders the path back to BIP32 notation, using ' to mark hardened
// segments.
func (p DerivationPath) String() string {
	if len(p) == 0 {
		return "m"
	}
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range p {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(idx.Index()), 10))
		if idx.IsHardened() {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// Bip44Path builds the canonical m/44'/coin'/account'/chain/address path.
// coin and account are hardened per BIP44; chain and address are not.
func Bip44Path(coin, account, chain, address uint32) DerivationPath {
	return DerivationPath{
		Hardened(44),
		Hardened(coin),
		Hardened(account),
		Normal(chain),
		Normal(address),
	}
}
