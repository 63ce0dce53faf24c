package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidPrice      ErrorCode = 100
	ErrCodeInvalidAmount     ErrorCode = 101
	ErrCodeInvalidVolatility ErrorCode = 102
	ErrCodeDivisionByZero    ErrorCode = 103
	ErrCodeInvalidTrade      ErrorCode = 104
	ErrCodeInvalidPosition   ErrorCode = 105
	ErrCodeInvalidParameter  ErrorCode = 106

	// Configuration errors (200-299)
	ErrCodeInvalidEngineConfig   ErrorCode = 200
	ErrCodeStrategyConfigInvalid ErrorCode = 201
	ErrCodeUnknownFeeModel       ErrorCode = 202

	// Market data errors (300-399)
	ErrCodeDataGap         ErrorCode = 300
	ErrCodeDataGapExceeded ErrorCode = 301
	ErrCodeEmptySeries     ErrorCode = 302

	// Portfolio and trade errors (400-499)
	ErrCodePositionNotFound    ErrorCode = 400
	ErrCodeDuplicatePosition   ErrorCode = 401
	ErrCodeInsufficientCash    ErrorCode = 402
	ErrCodeUnknownTradeSide    ErrorCode = 403
	ErrCodeInsufficientHolding ErrorCode = 404

	// Risk errors (500-599)
	ErrCodeRiskCalculation ErrorCode = 500

	// Backtest errors (600-699)
	ErrCodeStrategyExecution ErrorCode = 600
	ErrCodeRunNotIdle        ErrorCode = 601
	ErrCodeRunCancelled      ErrorCode = 602
	ErrCodeRunAborted        ErrorCode = 603
)
