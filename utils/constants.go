package utils

const (
	// Quote reference generation
	QuoteRefPrefix = "Q-"
	QuoteRefLength = 8

	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
	ErrCodeRequired   = "Code is required"
	ErrExportFailed   = "Failed to export quote"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
