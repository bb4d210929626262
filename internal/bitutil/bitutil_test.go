package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert.Equal(t, []int{0, 2, 5}, Bits(BoardMask(0b000_100_101)))
	assert.Empty(t, Bits(BoardMask(0)))
}

func TestPopLsb(t *testing.T) {
	m := BoardMask(0b000_100_101)
	var got []int
	for m != 0 {
		got = append(got, m.PopLsb())
	}
	assert.Equal(t, []int{0, 2, 5}, got)
	assert.Equal(t, -1, m.PopLsb())
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 3, BoardMask(0b000_100_101).PopCount())
	assert.Equal(t, 0, BoardMask(0).PopCount())
	assert.Equal(t, 12, BoardMask(0xFFF).PopCount())
}

func TestMirror12(t *testing.T) {
	assert.Equal(t, BoardMask(0), Mirror12(0))
	assert.Equal(t, BoardMask(0xFFF), Mirror12(0xFFF))
	// column 0 of row 0 maps to column 2 of row 0.
	assert.Equal(t, BoardMask(1<<2), Mirror12(1<<0))
	assert.Equal(t, BoardMask(1<<0), Mirror12(1<<2))
	// middle column is a fixed point.
	assert.Equal(t, BoardMask(1<<1), Mirror12(1<<1))
	// applying twice is the identity.
	for m := 0; m < 0x1000; m++ {
		assert.Equal(t, BoardMask(m), Mirror12(Mirror12(BoardMask(m))))
	}
}

func TestReverse12(t *testing.T) {
	assert.Equal(t, BoardMask(1<<11), Reverse12(1<<0))
	assert.Equal(t, BoardMask(1<<0), Reverse12(1<<11))
	for m := 0; m < 0x1000; m++ {
		assert.Equal(t, BoardMask(m), Reverse12(Reverse12(BoardMask(m))))
	}
}
