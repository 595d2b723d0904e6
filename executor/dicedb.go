package executor

//database operation for executor dice
import (
	"fmt"

	"github.com/luckchain/dice/account"
	dbm "github.com/luckchain/dice/common/db"
	"github.com/luckchain/dice/types"
)

// 全局配置与单局记录的状态键
func GlobalKey() (key []byte) {
	key = append(key, []byte("mavl-"+types.DiceX+"-")...)
	key = append(key, []byte(GlobalPoolSeed)...)
	return key
}

//RoundKey (player, sessionID) 确定一局
func RoundKey(player string, sessionID uint64) (key []byte) {
	key = append(key, []byte("mavl-"+types.DiceX+"-")...)
	key = append(key, []byte(fmt.Sprintf("%s:%s:%020d", RoundPoolSeed, player, sessionID))...)
	return key
}

func calcRoundAddrIndexKey(addr string, sessionID uint64) []byte {
	return []byte(fmt.Sprintf("%s-addr:%s:%020d", types.DiceX, addr, sessionID))
}

func calcRoundAddrIndexPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%s-addr:%s:", types.DiceX, addr))
}

//Action 一次指令执行的上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	fromaddr     string
	cosigner     string
	vaultaddr    string
}

//NewAction 构造执行上下文
func NewAction(d *Dice, tx *types.Transaction) *Action {
	return &Action{d.GetCoinsAccount(), d.GetStateDB(), tx.From, tx.CoSigner, CasinoVaultAddress()}
}

func (action *Action) loadGlobal() (*types.GlobalPool, error) {
	data, err := action.db.Get(GlobalKey())
	if err != nil {
		return nil, types.ErrGlobalPoolNotFound
	}
	var global types.GlobalPool
	err = types.Decode(data, &global)
	if err != nil {
		return nil, err
	}
	return &global, nil
}

func (action *Action) saveGlobal(global *types.GlobalPool) *types.KeyValue {
	value := types.Encode(global)
	action.db.Set(GlobalKey(), value)
	return &types.KeyValue{Key: GlobalKey(), Value: value}
}

func (action *Action) readRound(player string, sessionID uint64) (*types.RoundPool, error) {
	data, err := action.db.Get(RoundKey(player, sessionID))
	if err != nil {
		return nil, types.ErrRoundNotFound
	}
	var round types.RoundPool
	err = types.Decode(data, &round)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (action *Action) saveRound(round *types.RoundPool) (kvset []*types.KeyValue) {
	value := types.Encode(round)
	action.db.Set(RoundKey(round.Player, round.SessionID), value)
	kvset = append(kvset, &types.KeyValue{Key: RoundKey(round.Player, round.SessionID), Value: value})

	record := types.Encode(&types.RoundRecord{SessionID: round.SessionID, Status: round.Status})
	indexKey := calcRoundAddrIndexKey(round.Player, round.SessionID)
	action.db.Set(indexKey, record)
	kvset = append(kvset, &types.KeyValue{Key: indexKey, Value: record})
	return kvset
}

func (action *Action) roundReceiptLog(round *types.RoundPool, prevStatus int32, netGain int64, isWin bool) *types.ReceiptLog {
	r := &types.ReceiptRound{
		Player:     round.Player,
		SessionID:  round.SessionID,
		Status:     round.Status,
		PrevStatus: prevStatus,
		Bet:        round.Bet,
		NetGain:    netGain,
		IsWin:      isWin,
	}
	ty := types.TyLogPlaceBet
	if prevStatus == types.StatusActive {
		ty = types.TyLogSettle
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func mergeReceipt(logs []*types.ReceiptLog, kv []*types.KeyValue, receipts ...*types.Receipt) ([]*types.ReceiptLog, []*types.KeyValue) {
	for _, receipt := range receipts {
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	return logs, kv
}

//Initialize 引导全局配置，super admin 即本次签名者，之后不可更换。
func (action *Action) Initialize(init *types.DiceInitialize) (*types.Receipt, error) {
	if _, err := action.loadGlobal(); err == nil {
		return nil, types.ErrGlobalPoolExists
	}
	global := &types.GlobalPool{
		SuperAdmin:         action.fromaddr,
		OperationAuthority: init.OperationAuthority,
		FinanceAuthority:   init.FinanceAuthority,
		UpdateAuthority:    init.UpdateAuthority,
		Rtp:                init.Rtp,
		MaxWinAmount:       init.MaxWinAmount,
		MinBetAmount:       init.MinBetAmount,
		MinNum:             init.MinNum,
		MaxNum:             init.MaxNum,
	}
	if global.Rtp == 0 {
		global.Rtp = types.DefaultRtp
	}
	if global.Rtp >= 100 || global.Rtp < 0 {
		return nil, types.ErrInvalidRtp
	}
	if global.MaxWinAmount == 0 {
		global.MaxWinAmount = types.DefaultMaxWinAmount
	}
	if global.MinBetAmount == 0 {
		global.MinBetAmount = types.DefaultMinBetAmount
	}
	if global.MinNum == 0 {
		global.MinNum = types.DefaultMinNum
	}
	if global.MaxNum == 0 {
		global.MaxNum = types.DefaultMaxNum
	}
	kv := []*types.KeyValue{action.saveGlobal(global)}
	logs := []*types.ReceiptLog{{Ty: types.TyLogInit, Log: types.Encode(global)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//PlayGame 建局：校验押注参数与赔付上限，注金转入单局托管账户。
//玩家签名之外还需要运营方会签。
func (action *Action) PlayGame(play *types.DicePlay) (*types.Receipt, error) {
	global, err := action.loadGlobal()
	if err != nil {
		return nil, err
	}
	if action.cosigner != global.OperationAuthority {
		glog.Error("PlayGame", "addr", action.fromaddr, "cosigner", action.cosigner, "err", types.ErrUnauthorizedOperator)
		return nil, types.ErrUnauthorizedOperator
	}
	if global.MinBetAmount >= play.BetAmount {
		return nil, types.ErrInvalidBetAmount
	}
	if play.TargetNum < global.MinNum || play.TargetNum > global.MaxNum {
		return nil, types.ErrInvalidTargetNumber
	}
	netGain, err := CalcNetGain(play.BetAmount, play.TargetNum, play.IsUnder, global.Rtp)
	if err != nil {
		return nil, err
	}
	if netGain >= global.MaxWinAmount {
		glog.Error("PlayGame", "addr", action.fromaddr, "netGain", netGain, "err", types.ErrMaxWinAmountViolation)
		return nil, types.ErrMaxWinAmountViolation
	}
	if _, err := action.readRound(action.fromaddr, play.SessionID); err == nil {
		return nil, types.ErrNotAllowedDoubleBet
	}
	if action.coinsAccount.LoadAccount(action.fromaddr).GetBalance() <= play.BetAmount {
		glog.Error("PlayGame", "addr", action.fromaddr, "bet", play.BetAmount, "err", types.ErrInsufficientUserBalance)
		return nil, types.ErrInsufficientUserBalance
	}
	if action.coinsAccount.LoadAccount(action.vaultaddr).GetBalance() <= play.BetAmount {
		glog.Error("PlayGame", "vault", action.vaultaddr, "bet", play.BetAmount, "err", types.ErrInsufficientCasinoVault)
		return nil, types.ErrInsufficientCasinoVault
	}

	//注金从玩家转入单局托管账户
	roundVault := RoundVaultAddress(action.fromaddr, play.SessionID)
	receipt, err := action.transferUnprivileged(action.fromaddr, roundVault, play.BetAmount)
	if err != nil {
		glog.Error("PlayGame.transfer", "addr", action.fromaddr, "vault", roundVault, "amount", play.BetAmount, "err", err)
		return nil, err
	}

	round := &types.RoundPool{
		Bet:       play.BetAmount,
		Status:    types.StatusActive,
		IsUnder:   play.IsUnder,
		TargetNum: play.TargetNum,
		Player:    action.fromaddr,
		SessionID: play.SessionID,
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveRound(round)...)
	logs = append(logs, action.roundReceiptLog(round, 0, netGain, false))
	logs, kv = mergeReceipt(logs, kv, receipt)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//SetResult 开奖：Active 一次性转入 Won/Lost，赔率取当前全局配置。
//赢：资金池补足到全额赔付后划给玩家，赔率下调导致托管多于赔付时
//差额回资金池；输：托管余额清空进资金池。
//两个分支结束后托管账户余额都为零。
func (action *Action) SetResult(set *types.DiceSetResult) (*types.Receipt, error) {
	global, err := action.loadGlobal()
	if err != nil {
		return nil, err
	}
	if action.fromaddr != global.OperationAuthority {
		glog.Error("SetResult", "addr", action.fromaddr, "err", types.ErrUnauthorizedOperator)
		return nil, types.ErrUnauthorizedOperator
	}
	round, err := action.readRound(set.Owner, set.SessionID)
	if err != nil {
		return nil, err
	}
	if round.Player != set.Owner {
		return nil, types.ErrNotOriginalPlayer
	}
	if round.Status != types.StatusActive {
		glog.Error("SetResult", "owner", set.Owner, "session", set.SessionID, "status", round.Status, "err", types.ErrRoundAlreadySettled)
		return nil, types.ErrRoundAlreadySettled
	}
	netGain, err := CalcNetGain(round.Bet, round.TargetNum, round.IsUnder, global.Rtp)
	if err != nil {
		return nil, err
	}

	roundVault := RoundVaultAddress(set.Owner, set.SessionID)
	escrowBalance := action.coinsAccount.LoadAccount(roundVault).GetBalance()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if set.IsWin {
		grossPayout := round.Bet + netGain
		if topUp := grossPayout - escrowBalance; topUp > 0 {
			if action.coinsAccount.LoadAccount(action.vaultaddr).GetBalance() < topUp {
				glog.Error("SetResult", "vault", action.vaultaddr, "topUp", topUp, "err", types.ErrInsufficientCasinoVault)
				return nil, types.ErrInsufficientCasinoVault
			}
			receipt, err := action.transferAsProgram(action.vaultaddr, roundVault, topUp, casinoVaultSeeds()...)
			if err != nil {
				glog.Error("SetResult.topUp", "vault", action.vaultaddr, "amount", topUp, "err", err)
				return nil, err
			}
			logs, kv = mergeReceipt(logs, kv, receipt)
			escrowBalance += topUp
		}
		//赔付划给玩家。rtp 为 0 时毛赔付为 0，没有可划转的赔付
		if grossPayout > 0 {
			receipt, err := action.transferAsProgram(roundVault, round.Player, grossPayout, roundVaultSeeds(set.Owner, set.SessionID)...)
			if err != nil {
				glog.Error("SetResult.payout", "vault", roundVault, "player", round.Player, "err", err)
				return nil, err
			}
			logs, kv = mergeReceipt(logs, kv, receipt)
			escrowBalance -= grossPayout
		}
		//赔率在下注后被下调时托管会多于赔付，差额回资金池，托管仍然清零
		if escrowBalance > 0 {
			receipt, err := action.transferAsProgram(roundVault, action.vaultaddr, escrowBalance, roundVaultSeeds(set.Owner, set.SessionID)...)
			if err != nil {
				glog.Error("SetResult.surplus", "vault", roundVault, "amount", escrowBalance, "err", err)
				return nil, err
			}
			logs, kv = mergeReceipt(logs, kv, receipt)
		}
		round.Status = types.StatusWon
	} else {
		receipt, err := action.transferAsProgram(roundVault, action.vaultaddr, escrowBalance, roundVaultSeeds(set.Owner, set.SessionID)...)
		if err != nil {
			glog.Error("SetResult.sweep", "vault", roundVault, "err", err)
			return nil, err
		}
		logs, kv = mergeReceipt(logs, kv, receipt)
		round.Status = types.StatusLost
	}
	kv = append(kv, action.saveRound(round)...)
	logs = append(logs, action.roundReceiptLog(round, types.StatusActive, netGain, set.IsWin))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Withdraw 财务方从资金池提取
func (action *Action) Withdraw(w *types.DiceWithdraw) (*types.Receipt, error) {
	global, err := action.loadGlobal()
	if err != nil {
		return nil, err
	}
	if action.fromaddr != global.FinanceAuthority {
		glog.Error("Withdraw", "addr", action.fromaddr, "err", types.ErrUnauthorizedFinanceAdmin)
		return nil, types.ErrUnauthorizedFinanceAdmin
	}
	if action.coinsAccount.LoadAccount(action.vaultaddr).GetBalance() <= w.Amount {
		return nil, types.ErrInsufficientCasinoVault
	}
	receipt, err := action.transferAsProgram(action.vaultaddr, w.Recipient, w.Amount, casinoVaultSeeds()...)
	if err != nil {
		glog.Error("Withdraw", "vault", action.vaultaddr, "recipient", w.Recipient, "amount", w.Amount, "err", err)
		return nil, err
	}
	logs := []*types.ReceiptLog{{Ty: types.TyLogWithdraw, Log: types.Encode(w)}}
	logs, kv := mergeReceipt(logs, nil, receipt)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//SetRtp 参数修改只允许 update authority
func (action *Action) SetRtp(set *types.DiceSetParam) (*types.Receipt, error) {
	global, err := action.checkUpdateAuthority()
	if err != nil {
		return nil, err
	}
	if set.Value >= 100 || set.Value < 0 {
		return nil, types.ErrInvalidRtp
	}
	global.Rtp = set.Value
	return action.configReceipt(global), nil
}

//SetMaxWinAmount 单局最大净赢取
func (action *Action) SetMaxWinAmount(set *types.DiceSetParam) (*types.Receipt, error) {
	global, err := action.checkUpdateAuthority()
	if err != nil {
		return nil, err
	}
	if !types.CheckAmount(set.Value) {
		return nil, types.ErrAmount
	}
	global.MaxWinAmount = set.Value
	return action.configReceipt(global), nil
}

//SetMinBetAmount 最小注金
func (action *Action) SetMinBetAmount(set *types.DiceSetParam) (*types.Receipt, error) {
	global, err := action.checkUpdateAuthority()
	if err != nil {
		return nil, err
	}
	if !types.CheckAmount(set.Value) {
		return nil, types.ErrAmount
	}
	global.MinBetAmount = set.Value
	return action.configReceipt(global), nil
}

//SetOperationAuthority 轮换运营方，仅 super admin
func (action *Action) SetOperationAuthority(set *types.DiceSetAuthority) (*types.Receipt, error) {
	global, err := action.checkSuperAdmin()
	if err != nil {
		return nil, err
	}
	global.OperationAuthority = set.Authority
	return action.authorityReceipt(global), nil
}

//SetFinanceAuthority 轮换财务方，仅 super admin
func (action *Action) SetFinanceAuthority(set *types.DiceSetAuthority) (*types.Receipt, error) {
	global, err := action.checkSuperAdmin()
	if err != nil {
		return nil, err
	}
	global.FinanceAuthority = set.Authority
	return action.authorityReceipt(global), nil
}

//SetUpdateAuthority 轮换参数管理方，仅 super admin
func (action *Action) SetUpdateAuthority(set *types.DiceSetAuthority) (*types.Receipt, error) {
	global, err := action.checkSuperAdmin()
	if err != nil {
		return nil, err
	}
	global.UpdateAuthority = set.Authority
	return action.authorityReceipt(global), nil
}

func (action *Action) checkUpdateAuthority() (*types.GlobalPool, error) {
	global, err := action.loadGlobal()
	if err != nil {
		return nil, err
	}
	if action.fromaddr != global.UpdateAuthority {
		glog.Error("checkUpdateAuthority", "addr", action.fromaddr, "err", types.ErrUnauthorizedUpdateAdmin)
		return nil, types.ErrUnauthorizedUpdateAdmin
	}
	return global, nil
}

func (action *Action) checkSuperAdmin() (*types.GlobalPool, error) {
	global, err := action.loadGlobal()
	if err != nil {
		return nil, err
	}
	if action.fromaddr != global.SuperAdmin {
		glog.Error("checkSuperAdmin", "addr", action.fromaddr, "err", types.ErrUnauthorizedSuperAdmin)
		return nil, types.ErrUnauthorizedSuperAdmin
	}
	return global, nil
}

func (action *Action) configReceipt(global *types.GlobalPool) *types.Receipt {
	kv := []*types.KeyValue{action.saveGlobal(global)}
	logs := []*types.ReceiptLog{{Ty: types.TyLogConfig, Log: types.Encode(global)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}
}

func (action *Action) authorityReceipt(global *types.GlobalPool) *types.Receipt {
	kv := []*types.KeyValue{action.saveGlobal(global)}
	logs := []*types.ReceiptLog{{Ty: types.TyLogAuthority, Log: types.Encode(global)}}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}
}
