// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"time"

	"github.com/danielhkuo/quickly-poll/models"
)

// IsOpenForVoting reports whether now falls in [PubDate, ExpiresAt)
func IsOpenForVoting(q models.Question, now time.Time) bool {
	return !now.Before(q.PubDate) && now.Before(q.ExpiresAt)
}

// IsExpired reports whether the question's expiration is strictly in the past
func IsExpired(q models.Question, now time.Time) bool {
	return q.ExpiresAt.Before(now)
}
