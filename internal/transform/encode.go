package transform

import (
	xtransform "golang.org/x/text/transform"
)

const alphabetSize = 26

// Rotation normalizes a signed shift to the equivalent forward rotation in [0, 25].
// Go's % truncates toward zero, so a negative remainder is lifted by one more turn.
func Rotation(shift int) int {
	return ((shift % alphabetSize) + alphabetSize) % alphabetSize
}

// Encode applies a Caesar cipher with the given shift to each line. Only ASCII letters
// move; their case is kept and every other byte is copied unchanged.
func Encode(lines []string, shift int) []string {
	cipher := NewCaesar(shift)

	out := make([]string, len(lines))
	for i, line := range lines {
		// Caesar only reports ErrShortDst, which String recovers from by growing dst.
		out[i], _, _ = xtransform.String(cipher, line)
	}
	return out
}

// Caesar is a transform.Transformer rotating ASCII letters by a fixed amount.
type Caesar struct {
	xtransform.NopResetter
	rotation byte
}

// NewCaesar returns a Caesar transformer for a signed shift.
func NewCaesar(shift int) Caesar {
	return Caesar{rotation: byte(Rotation(shift))}
}

// Transform implements transform.Transformer. Output length always equals input
// length, so multi-byte UTF-8 sequences are copied through intact.
func (c Caesar) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
		err = xtransform.ErrShortDst
	}

	for i := 0; i < n; i++ {
		dst[i] = c.rotate(src[i])
	}

	return n, n, err
}

func (c Caesar) rotate(b byte) byte {
	switch {
	case 'A' <= b && b <= 'Z':
		return 'A' + (b-'A'+c.rotation)%alphabetSize
	case 'a' <= b && b <= 'z':
		return 'a' + (b-'a'+c.rotation)%alphabetSize
	default:
		return b
	}
}
