package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Scheduled job errors
	ErrScheduledJobNotFound = errors.New("scheduled job not found")
	ErrInvalidCronExpr      = errors.New("invalid cron expression")

	// Webhook subscription errors
	ErrSubscriptionNotFound = errors.New("webhook subscription not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
