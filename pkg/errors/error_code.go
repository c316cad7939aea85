package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidOrder         ErrorCode = 102
	ErrCodeInvalidSecurity      ErrorCode = 103
	ErrCodeInvalidMoney         ErrorCode = 104

	// Schedule/venue errors (200-299)
	ErrCodeInvalidSchedule     ErrorCode = 200
	ErrCodeInvalidRate         ErrorCode = 201
	ErrCodeInvalidTierTable    ErrorCode = 202
	ErrCodeUnknownVenue        ErrorCode = 203
	ErrCodeVenueAlreadyExists  ErrorCode = 204
	ErrCodeInvalidTimeSchedule ErrorCode = 205

	// Fee computation errors (300-399)
	ErrCodeUnsupportedSecurityType ErrorCode = 300
	ErrCodeUnsupportedOrderType    ErrorCode = 301
	ErrCodeCurrencyMismatch        ErrorCode = 302

	// Currency conversion errors (400-499)
	ErrCodeMissingConversionRate ErrorCode = 400
	ErrCodeUnknownCurrency       ErrorCode = 401
)
