package notification

import "errors"

var (
	ErrUndefinedEventType = errors.New("undefined order event type")
	ErrStatusMismatch     = errors.New("order state does not match event")
	ErrMissingDriver      = errors.New("assigned event without driver")
)
