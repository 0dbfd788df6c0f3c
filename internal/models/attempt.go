package models

import "time"

// AttemptRecord is one rate-limit bookkeeping entry, keyed by the
// applicant's normalized email. Records are never deleted by the service;
// they age out of the store once past ExpiresAt.
type AttemptRecord struct {
	Email     string
	At        time.Time
	Origin    string
	ExpiresAt time.Time
}
