package encodeservice

import "io"

const (
	hextable = "0123456789abcdef"

	// TokenLen is the width of one escaped-hex token, i.e. `\x41`.
	TokenLen = 4

	// chunk of input bytes encoded per write to the underlying writer
	encoderChunk = 1024
)

// EncodedLen returns the length of the escaped-hex encoding of n source bytes.
func EncodedLen(n int) int { return n * TokenLen }

// EncodeEscapedHex writes the escaped-hex form of src into dst and returns the
// number of bytes written. dst must hold at least EncodedLen(len(src)) bytes.
func EncodeEscapedHex(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = '\\'
		dst[j+1] = 'x'
		dst[j+2] = hextable[v>>4]
		dst[j+3] = hextable[v&0x0f]
		j += TokenLen
	}
	return j
}

// EncodeToEscapedHex returns src rendered as a run of `\xHH` tokens.
func EncodeToEscapedHex(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	EncodeEscapedHex(dst, src)
	return string(dst)
}

// EncodeStringEscapedHex encodes the bytes of the input string as escaped hex.
func EncodeStringEscapedHex(input string) string {
	return EncodeToEscapedHex([]byte(input))
}

type escapedHexEncoder struct {
	w   io.Writer
	err error
	out [encoderChunk * TokenLen]byte
}

// NewEscapedHexEncoder returns an io.Writer that writes escaped-hex text to w.
// Like encoding/hex.NewEncoder, it holds no state between writes, so there is
// nothing to flush.
func NewEscapedHexEncoder(w io.Writer) io.Writer {
	return &escapedHexEncoder{w: w}
}

func (e *escapedHexEncoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	for len(p) > 0 {
		chunk := min(len(p), encoderChunk)

		encoded := EncodeEscapedHex(e.out[:], p[:chunk])
		written, werr := e.w.Write(e.out[:encoded])
		n += written / TokenLen
		if werr != nil {
			e.err = werr
			break
		}
		if written != encoded {
			e.err = io.ErrShortWrite
			break
		}
		p = p[chunk:]
	}
	return n, e.err
}
