package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckchain/dice/types"
)

func TestCalcNetGainUnder(t *testing.T) {
	//押小 50：概率 0.5，倍率 2*0.95=1.9
	net, err := CalcNetGain(1000000, 50, true, 95)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), net)
}

func TestCalcNetGainOver(t *testing.T) {
	//押大 50：概率 0.49，毛赔付向下取整
	net, err := CalcNetGain(1000000, 50, false, 95)
	require.NoError(t, err)
	assert.Equal(t, int64(938775), net)
}

func TestCalcNetGainDeterministic(t *testing.T) {
	a, err := CalcNetGain(123456789, 37, true, 95)
	require.NoError(t, err)
	b, err := CalcNetGain(123456789, 37, true, 95)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalcNetGainRiskReward(t *testing.T) {
	//目标越小押小越难中，净赢取应该越大
	risky, err := CalcNetGain(types.Coin, 10, true, 95)
	require.NoError(t, err)
	safe, err := CalcNetGain(types.Coin, 50, true, 95)
	require.NoError(t, err)
	assert.Greater(t, risky, safe)
}

func TestCalcNetGainInvalidTarget(t *testing.T) {
	//概率越界的目标直接拒绝
	_, err := CalcNetGain(types.Coin, 0, true, 95)
	assert.Equal(t, types.ErrInvalidTargetNumber, err)
	_, err = CalcNetGain(types.Coin, 100, true, 95)
	assert.Equal(t, types.ErrInvalidTargetNumber, err)
	_, err = CalcNetGain(types.Coin, 99, false, 95)
	assert.Equal(t, types.ErrInvalidTargetNumber, err)
	_, err = CalcNetGain(types.Coin, 0, false, 95)
	require.NoError(t, err)
}
