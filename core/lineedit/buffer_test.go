package lineedit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_GrowthKeepsContent(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, BufferIncrement, b.Cap())

	var expected strings.Builder
	for i := 0; i < 3*BufferIncrement+7; i++ {
		c := byte('a' + i%26)
		b.Append(c)
		expected.WriteByte(c)
	}

	assert.Equal(t, expected.String(), b.String())
	assert.Equal(t, 4*BufferIncrement, b.Cap())
}

func TestBuffer_Backspace(t *testing.T) {
	b := NewBuffer()
	assert.False(t, b.Backspace())

	b.Append('l', 's')
	assert.True(t, b.Backspace())
	assert.Equal(t, "l", b.String())
}

func TestBuffer_BackspaceUTF8(t *testing.T) {
	b := NewBuffer()
	b.Append([]byte("café")...)

	assert.True(t, b.Backspace())
	assert.Equal(t, "caf", b.String())

	// Stray continuation bytes are removed one at a time.
	b.Append(0xa9)
	assert.True(t, b.Backspace())
	assert.Equal(t, "caf", b.String())
}

func TestBuffer_SetGrows(t *testing.T) {
	b := NewBuffer()
	b.Append('x')

	long := strings.Repeat("y", BufferIncrement*2+1)
	b.Set(long)

	assert.Equal(t, long, b.String())
	assert.Equal(t, 3*BufferIncrement, b.Cap())

	b.Set("short")
	assert.Equal(t, "short", b.String())
}
