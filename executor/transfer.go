package executor

import (
	"strconv"
	"strings"

	"github.com/luckchain/dice/common/address"
	"github.com/luckchain/dice/types"
)

// 派生地址种子。持有种子的代码路径是资金流出托管账户的唯一通道。
const (
	GlobalPoolSeed     = "global-authority"
	VaultAuthoritySeed = "vault-authority"
	RoundPoolSeed      = "player-pool"
)

//CasinoVaultAddress 资金池派生地址
func CasinoVaultAddress() string {
	return address.ExecAddress(VaultAuthoritySeed)
}

//RoundVaultAddress 单局托管账户派生地址
func RoundVaultAddress(player string, sessionID uint64) string {
	return address.ExecAddress(strings.Join(roundVaultSeeds(player, sessionID), ":"))
}

func roundVaultSeeds(player string, sessionID uint64) []string {
	return []string{player, VaultAuthoritySeed, strconv.FormatUint(sessionID, 10)}
}

func casinoVaultSeeds() []string {
	return []string{VaultAuthoritySeed}
}

// transferUnprivileged 普通签名转账：from 是正常签名账户(玩家)。
func (action *Action) transferUnprivileged(from, to string, amount int64) (*types.Receipt, error) {
	return action.coinsAccount.Transfer(from, to, amount)
}

// transferAsProgram 程序签名转账：仅当 seeds 重新派生出 from 地址时
// 才允许，托管账户与资金池的余额只能经由这里减少。
func (action *Action) transferAsProgram(from, to string, amount int64, seeds ...string) (*types.Receipt, error) {
	derived := address.ExecAddress(strings.Join(seeds, ":"))
	if derived != from {
		glog.Error("transferAsProgram", "from", from, "derived", derived, "err", types.ErrInvalidProgramSeeds)
		return nil, types.ErrInvalidProgramSeeds
	}
	return action.coinsAccount.Transfer(from, to, amount)
}
