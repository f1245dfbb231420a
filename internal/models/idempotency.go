package models

import "time"

// IdempotencyKey tracks processed requests so a retried request replays the
// first response instead of applying the operation twice
type IdempotencyKey struct {
	CreatedAt      time.Time
	Key            string
	RequestPath    string
	ResponseBody   string
	ResponseStatus int
}
