package executor

import (
	"github.com/luckchain/dice/types"
)

// CalcNetGain 赔付计算，下注与开奖两处共用，必须保持一致。
//
// 中奖概率 = target/100 (押小) 或 (99-target)/100 (押大)，
// 倍率 = (1/概率) * (rtp/100)，毛赔付 = 注金 * 倍率。
// 中间量为 float64，毛赔付向下取整后再减注金，截断的零头归庄家。
// TODO: 大额注金下 float64 会有表示误差，换成定点数前需要和线上
// 结果做逐位对比。
func CalcNetGain(betAmount int64, targetNum int32, isUnder bool, rtp int64) (int64, error) {
	var winChance float64
	if isUnder {
		winChance = float64(targetNum) / 100.0
	} else {
		winChance = float64(99-targetNum) / 100.0
	}
	if winChance <= 0 || winChance >= 1 {
		return 0, types.ErrInvalidTargetNumber
	}
	rtpRatio := float64(rtp) / 100.0
	multiplier := (1.0 / winChance) * rtpRatio
	grossPayout := int64(float64(betAmount) * multiplier)
	return grossPayout - betAmount, nil
}
