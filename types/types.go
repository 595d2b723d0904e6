package types

import (
	"encoding/json"
)

// DiceX is the executor name of the dice program.
const DiceX = "dice"

// Coin is the base currency precision, 1 coin = 1e8 units.
const Coin int64 = 1e8

// MaxCoin caps any single amount moved or configured by the program.
const MaxCoin int64 = 1e4 * 1e8 * 1e5

// Default game parameters, applied at initialization when the
// bootstrap request leaves them unset.
const (
	DefaultRtp          int64 = 95
	DefaultMaxWinAmount int64 = 10000000000
	DefaultMinBetAmount int64 = 100000000
	DefaultMinNum       int32 = 6
	DefaultMaxNum       int32 = 96
)

// Round status. A round starts Active and transitions exactly once
// to Won or Lost.
const (
	StatusActive int32 = iota + 1
	StatusWon
	StatusLost
)

// Dice action types.
const (
	DiceActionInitialize int32 = iota + 1
	DiceActionPlay
	DiceActionSetResult
	DiceActionWithdraw
	DiceActionSetRtp
	DiceActionSetMaxWinAmount
	DiceActionSetMinBetAmount
	DiceActionSetOperationAuthority
	DiceActionSetFinanceAuthority
	DiceActionSetUpdateAuthority
)

// Receipt execution results.
const (
	ExecErr int32 = 0
	ExecOk  int32 = 2
)

// Receipt log types.
const (
	TyLogTransfer int32 = iota + 100
	TyLogDeposit
	TyLogInit
	TyLogPlaceBet
	TyLogSettle
	TyLogWithdraw
	TyLogConfig
	TyLogAuthority
)

// Account is an address-identified balance holder.
type Account struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

// GetBalance avoids nil checks at call sites.
func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

// GlobalPool is the single program-wide configuration record. The four
// authority fields gate every privileged action; there is no operation
// that rotates SuperAdmin.
type GlobalPool struct {
	SuperAdmin         string `json:"superAdmin"`
	OperationAuthority string `json:"operationAuthority"`
	FinanceAuthority   string `json:"financeAuthority"`
	UpdateAuthority    string `json:"updateAuthority"`
	Rtp                int64  `json:"rtp"`
	MaxWinAmount       int64  `json:"maxWinAmount"`
	MinBetAmount       int64  `json:"minBetAmount"`
	MinNum             int32  `json:"minNum"`
	MaxNum             int32  `json:"maxNum"`
}

// RoundPool is the per-round ledger entry, keyed by (player, session id).
// Bet, TargetNum, IsUnder and Player are fixed at creation; only Status
// changes afterwards, exactly once.
type RoundPool struct {
	Bet       int64  `json:"bet"`
	Status    int32  `json:"status"`
	IsUnder   bool   `json:"isUnder"`
	TargetNum int32  `json:"targetNum"`
	Player    string `json:"player"`
	SessionID uint64 `json:"sessionId"`
}

// DiceInitialize bootstraps the global pool. Zero-valued numeric fields
// fall back to the defaults above.
type DiceInitialize struct {
	OperationAuthority string `json:"operationAuthority"`
	FinanceAuthority   string `json:"financeAuthority"`
	UpdateAuthority    string `json:"updateAuthority"`
	Rtp                int64  `json:"rtp"`
	MaxWinAmount       int64  `json:"maxWinAmount"`
	MinBetAmount       int64  `json:"minBetAmount"`
	MinNum             int32  `json:"minNum"`
	MaxNum             int32  `json:"maxNum"`
}

// DicePlay opens a round: the player wagers BetAmount that the draw
// lands under (or over) TargetNum.
type DicePlay struct {
	TargetNum int32  `json:"targetNum"`
	IsUnder   bool   `json:"isUnder"`
	BetAmount int64  `json:"betAmount"`
	SessionID uint64 `json:"sessionId"`
}

// DiceSetResult settles a round with the oracle-decided outcome.
type DiceSetResult struct {
	IsWin     bool   `json:"isWin"`
	SessionID uint64 `json:"sessionId"`
	Owner     string `json:"owner"`
}

// DiceWithdraw sweeps Amount from the casino vault to Recipient.
type DiceWithdraw struct {
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
}

// DiceSetParam carries the new value for one of the numeric setters.
type DiceSetParam struct {
	Value int64 `json:"value"`
}

// DiceSetAuthority carries the new identity for one of the rotations.
type DiceSetAuthority struct {
	Authority string `json:"authority"`
}

// DiceAction is the payload of a dice transaction; exactly one of the
// pointer fields matching Ty is set.
type DiceAction struct {
	Ty           int32             `json:"ty"`
	Initialize   *DiceInitialize   `json:"initialize,omitempty"`
	Play         *DicePlay         `json:"play,omitempty"`
	SetResult    *DiceSetResult    `json:"setResult,omitempty"`
	Withdraw     *DiceWithdraw     `json:"withdraw,omitempty"`
	SetParam     *DiceSetParam     `json:"setParam,omitempty"`
	SetAuthority *DiceSetAuthority `json:"setAuthority,omitempty"`
}

// Transaction is one well-typed request to the engine. From is the
// primary signing identity; CoSigner is the secondary signer on the
// operations that require a co-sign (bet placement).
type Transaction struct {
	Execer   string `json:"execer"`
	Payload  []byte `json:"payload"`
	From     string `json:"from"`
	CoSigner string `json:"coSigner,omitempty"`
}

// KeyValue is one state write produced by an action.
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog is one typed event produced by an action.
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt is the full effect record of one executed action.
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptAccountTransfer records one balance movement.
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptRound records a round transition.
type ReceiptRound struct {
	Player     string `json:"player"`
	SessionID  uint64 `json:"sessionId"`
	Status     int32  `json:"status"`
	PrevStatus int32  `json:"prevStatus"`
	Bet        int64  `json:"bet"`
	NetGain    int64  `json:"netGain"`
	IsWin      bool   `json:"isWin"`
}

// RoundRecord is the value stored under the per-address round index.
type RoundRecord struct {
	SessionID uint64 `json:"sessionId"`
	Status    int32  `json:"status"`
}

// Encode marshals a state record; records are produced by this program
// only, so a marshal failure means corrupted process state.
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode unmarshals a state record or payload.
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// CheckAmount reports whether an amount is inside the representable range.
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
