package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMaskUnpromoted(t *testing.T) {
	assert.Equal(t, ChickBit, HenBit.Unpromoted())
	assert.Equal(t, ChickBit, (ChickBit | HenBit).Unpromoted())
	assert.Equal(t, LionBit, LionBit.Unpromoted())
	assert.Equal(t, AllUnpromoted, (AllUnpromoted | HenBit).Unpromoted())
}

func TestKindMaskString(t *testing.T) {
	assert.Equal(t, "cg", (ChickBit | GiraffeBit).String())
	assert.Equal(t, "-", KindMask(0).String())
}

func TestActionDrop(t *testing.T) {
	a := Action{From: SquareCount + 2, To: 5}
	assert.True(t, a.IsDrop())
	assert.Equal(t, 2, a.HandOrdinal())

	b := Action{From: 3, To: 5}
	assert.False(t, b.IsDrop())
}

func TestKeyMin(t *testing.T) {
	small := KeyFromBig(big.NewInt(1))
	big_ := KeyFromBig(big.NewInt(2))
	assert.Equal(t, small, small.Min(big_))
	assert.Equal(t, small, big_.Min(small))
}

func TestKeyFromBigTruncates(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	huge.Add(huge, big.NewInt(7))
	assert.Equal(t, KeyFromBig(big.NewInt(7)), KeyFromBig(huge))
}
