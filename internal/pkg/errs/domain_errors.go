package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Campaign errors
	ErrCampaignNotFound = errors.New("campaign not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Settings errors
	ErrSettingsNotFound = errors.New("store settings not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
