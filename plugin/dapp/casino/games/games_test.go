// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package games

import (
	"errors"
	"testing"

	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 前半部分 0x12345680 % 6 = 2, 后半部分 0x90123458 % 6 = 2, 两个点数都是 3
var tieRandomness = []byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x12, 0x34, 0x56, 0x80,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x90, 0x12, 0x34, 0x58,
}

func TestFaces(t *testing.T) {
	a, b, err := Faces(tieRandomness)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), a)
	assert.Equal(t, uint32(3), b)

	_, _, err = Faces(tieRandomness[:31])
	assert.Error(t, err)

	r := make([]byte, 32)
	r[15] = 5
	r[31] = 1
	a, b, err = Faces(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), a)
	assert.Equal(t, uint32(2), b)
}

func TestOutcome(t *testing.T) {
	g, err := Load(cty.DiceX)
	require.NoError(t, err)
	outcome, err := g.Outcome(tieRandomness)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), outcome)

	g, err = Load(cty.CoinflipX)
	require.NoError(t, err)
	outcome, err = g.Outcome(tieRandomness)
	require.NoError(t, err)
	assert.Equal(t, Head, outcome)

	r := make([]byte, 32)
	r[15] = 0 // head 1
	r[31] = 1 // tail 2
	outcome, err = g.Outcome(r)
	require.NoError(t, err)
	assert.Equal(t, Tail, outcome)

	_, err = Load("roulette")
	assert.True(t, errors.Is(err, cty.ErrUnknownGame))
}

func TestCheckOutcome(t *testing.T) {
	dice, _ := Load(cty.DiceX)
	assert.NoError(t, CheckOutcome(dice, 3))
	assert.NoError(t, CheckOutcome(dice, 12))
	err := CheckOutcome(dice, 2)
	assert.True(t, errors.Is(err, cty.ErrInvalidBetPosition))
	var pos *cty.InvalidBetPositionError
	require.True(t, errors.As(err, &pos))
	assert.Equal(t, uint32(3), pos.Min)
	assert.Equal(t, uint32(12), pos.Max)
	assert.Error(t, CheckOutcome(dice, 13))

	coinflip, _ := Load(cty.CoinflipX)
	assert.NoError(t, CheckOutcome(coinflip, 0))
	assert.NoError(t, CheckOutcome(coinflip, 1))
	assert.Error(t, CheckOutcome(coinflip, 2))
}

func TestDiceCoefficients(t *testing.T) {
	g, _ := Load(cty.DiceX)
	coefs, err := g.Coefficients(types.MustParseDec("0.01"))
	require.NoError(t, err)
	want := []string{
		"0.018285714285714285",
		"0.08",
		"0.188",
		"0.370769230769230769",
		"0.697142857142857142",
		"1.376",
		"2.564",
		"4.94",
		"10.88",
		"34.64",
	}
	assert.Equal(t, want, FormatCoefficients(coefs))
	assert.Equal(t, 2, g.CoefficientIndex(5))

	// 没有优势时就是公平赔率 1/p - 1
	coefs, err = g.Coefficients(types.DecZero)
	require.NoError(t, err)
	assert.Equal(t, "35", types.FormatDec(coefs[9]))
	assert.Equal(t, "0.2", types.FormatDec(coefs[2]))
}

func TestCoinflipCoefficients(t *testing.T) {
	g, _ := Load(cty.CoinflipX)
	coefs, err := g.Coefficients(types.MustParseDec("0.01"))
	require.NoError(t, err)
	require.Len(t, coefs, 1)
	assert.Equal(t, "0.98", types.FormatDec(coefs[0]))

	coefs, err = g.Coefficients(types.DecZero)
	require.NoError(t, err)
	assert.Equal(t, "1", types.FormatDec(coefs[0]))

	_, err = g.Coefficients(types.DecOne)
	assert.True(t, errors.Is(err, cty.ErrAdvantageValueOutOfRange))
}

func TestWins(t *testing.T) {
	dice, _ := Load(cty.DiceX)
	assert.True(t, dice.Wins(5, 6))
	assert.True(t, dice.Wins(6, 6))
	assert.False(t, dice.Wins(7, 6))

	coinflip, _ := Load(cty.CoinflipX)
	assert.True(t, coinflip.Wins(Head, Head))
	assert.False(t, coinflip.Wins(Tail, Head))
}

func TestPayout(t *testing.T) {
	mult, ok := WinMultiplier(types.MustParseDec("0.01"))
	require.True(t, ok)
	win, err := Payout(1000, types.MustParseDec("0.188"), mult)
	require.NoError(t, err)
	assert.Equal(t, uint64(1186), win)

	win, err = Payout(1000, types.MustParseDec("0.98"), mult)
	require.NoError(t, err)
	assert.Equal(t, uint64(1970), win)

	_, ok = WinMultiplier(types.MustParseDec("1.5"))
	assert.False(t, ok)

	coefs, err := ParseCoefficients([]string{"0.5", "1.25"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5", "1.25"}, FormatCoefficients(coefs))
}
