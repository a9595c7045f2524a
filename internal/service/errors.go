package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrEmptyQuestion is returned by the orchestrator when the combined
	// voice transcript and typed text are empty after trimming. The external
	// answer service is never called in this case.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrIncompleteAccountDetails is returned by account activation when any
	// of accountNo, ifscCode or branch is missing. Linked-account fields are
	// all-or-nothing.
	ErrIncompleteAccountDetails = errors.New("incomplete account details")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidCategory = errors.New("invalid content category")
)
