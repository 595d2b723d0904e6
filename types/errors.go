package types

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrActionNotSupport = errors.New("action not support")
	ErrAmount           = errors.New("invalid amount")
	ErrNoBalance        = errors.New("no balance")
	ErrSendSameToRecv   = errors.New("from and to are the same address")

	ErrGlobalPoolExists   = errors.New("global pool already initialized")
	ErrGlobalPoolNotFound = errors.New("global pool not initialized")
	ErrRoundNotFound      = errors.New("round not found")

	ErrInvalidBetAmount        = errors.New("invalid bet amount")
	ErrMaxWinAmountViolation   = errors.New("bet net gain violates max win amount")
	ErrInvalidTargetNumber     = errors.New("invalid target number")
	ErrInvalidRtp              = errors.New("invalid rtp")
	ErrInsufficientUserBalance = errors.New("insufficient user balance")
	ErrInsufficientCasinoVault = errors.New("insufficient casino vault balance")

	ErrNotAllowedDoubleBet = errors.New("not allowed to double bet")
	ErrNotOriginalPlayer   = errors.New("not original player")
	ErrRoundAlreadySettled = errors.New("round already settled")

	ErrUnauthorizedOperator     = errors.New("only operation authority can call this")
	ErrUnauthorizedFinanceAdmin = errors.New("only finance authority can call this")
	ErrUnauthorizedUpdateAdmin  = errors.New("only update authority can call this")
	ErrUnauthorizedSuperAdmin   = errors.New("only super admin can call this")

	ErrInvalidProgramSeeds = errors.New("seeds do not derive the source address")
)
