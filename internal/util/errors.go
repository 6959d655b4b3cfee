package util

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrUnknownCollection    = errors.New("unknown collection")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidMonth         = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidProfileToken  = errors.New("invalid profile token")
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrInvalidModuleOp      = errors.New("invalid content module operation")
	ErrInvalidPayload       = errors.New("invalid payload")
)
