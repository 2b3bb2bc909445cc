package crypto

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	g := NewPasswordGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		p, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, p, PasswordLength)

		for _, c := range []byte(p) {
			assert.GreaterOrEqual(t, c, byte(33))
			assert.LessOrEqual(t, c, byte(126))
		}
		seen[p] = struct{}{}
	}

	assert.Len(t, seen, 50, "generated passwords should not repeat")
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	src := make([]byte, 0, 2*PasswordLength)
	// 188 and 255 are outside the unbiased range and must be skipped
	src = append(src, 0, 188, 93, 255, 94)
	for len(src) < 2*PasswordLength {
		src = append(src, 1)
	}

	g := &passwordGenerator{rand: bytes.NewReader(append(src, bytes.Repeat([]byte{2}, 2*PasswordLength)...))}
	p, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, byte('!'), p[0])
	assert.Equal(t, byte('~'), p[1])
	assert.Equal(t, byte('!'), p[2])
	assert.Equal(t, byte('"'), p[3])
}

func TestGenerate_ReaderError(t *testing.T) {
	g := &passwordGenerator{rand: iotest.ErrReader(errors.New("no entropy"))}

	_, err := g.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entropy")
}
