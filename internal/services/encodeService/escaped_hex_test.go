package encodeservice

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^(\\x[0-9a-f]{2})*$`)

// decodeEscapedHex strips the \x markers and hex-decodes what remains.
func decodeEscapedHex(t *testing.T, s string) []byte {
	t.Helper()
	out, err := hex.DecodeString(strings.ReplaceAll(s, `\x`, ""))
	require.NoError(t, err)
	return out
}

func TestEncodeToEscapedHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "zero byte", in: []byte{0x00}, want: `\x00`},
		{name: "high and newline", in: []byte{0xFF, 0x0A}, want: `\xff\x0a`},
		{name: "ascii", in: []byte("AB"), want: `\x41\x42`},
		{name: "zero padded", in: []byte{10, 255, 1}, want: `\x0a\xff\x01`},
		{name: "embedded nul", in: []byte{'a', 0, 'b'}, want: `\x61\x00\x62`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EncodeToEscapedHex(tt.in))
		})
	}
}

func TestEncodeEscapedHexAllBytes(t *testing.T) {
	t.Parallel()

	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}

	got := EncodeToEscapedHex(src)
	require.Len(t, got, EncodedLen(len(src)))
	assert.Regexp(t, tokenPattern, got)
	assert.Equal(t, src, decodeEscapedHex(t, got))

	for i := 0; i < len(got); i += TokenLen {
		assert.Equal(t, `\x`+hex.EncodeToString(src[i/TokenLen:i/TokenLen+1]), got[i:i+TokenLen])
	}
}

func TestEscapedHexRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 3, 1023, 1024, 1025, 4096 + 7} {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(rng.UintN(256))
		}

		got := EncodeToEscapedHex(src)
		assert.Len(t, got, 4*n)
		assert.Regexp(t, tokenPattern, got)
		assert.Equal(t, src, decodeEscapedHex(t, got), "n=%d", n)
	}
}

func TestEscapedHexEncoderMatchesEncode(t *testing.T) {
	t.Parallel()

	src := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef, 0x00}, 900)

	var buf bytes.Buffer
	enc := NewEscapedHexEncoder(&buf)

	// Uneven writes cross the internal chunk boundary.
	rest := src
	for _, size := range []int{1, 7, 1024, 1500, 3} {
		n, err := enc.Write(rest[:size])
		require.NoError(t, err)
		assert.Equal(t, size, n)
		rest = rest[size:]
	}
	_, err := enc.Write(rest)
	require.NoError(t, err)

	assert.Equal(t, EncodeToEscapedHex(src), buf.String())
}

type failingWriter struct {
	limit   int
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errors.New("disk full")
	}
	w.written += len(p)
	return len(p), nil
}

func TestEscapedHexEncoderWriteError(t *testing.T) {
	t.Parallel()

	w := &failingWriter{limit: encoderChunk * TokenLen}
	enc := NewEscapedHexEncoder(w)

	n, err := enc.Write(make([]byte, encoderChunk*2))
	require.EqualError(t, err, "disk full")
	assert.Equal(t, encoderChunk, n)

	// The error is sticky.
	_, err = enc.Write([]byte{1})
	require.EqualError(t, err, "disk full")
}

func TestEncodeServiceEscapedHex(t *testing.T) {
	t.Parallel()

	svc := NewEncodeService()

	got, err := svc.Encode("xhex", "AB")
	require.NoError(t, err)
	assert.Equal(t, `\x41\x42`, got)

	got, err = svc.Encode("Escaped-Hex", "\n")
	require.NoError(t, err)
	assert.Equal(t, `\x0a`, got)

	got, err = svc.Encode("url", "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "a+b%26c", got)

	_, err = svc.Encode("rot13", "x")
	require.Error(t, err)
}
