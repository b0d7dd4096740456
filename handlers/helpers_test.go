// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/testutil"
)

// authedRequest builds a JSON request with the user already authenticated,
// as if it had passed through middleware.RequireAuth
func authedRequest(method, path string, body interface{}, userID string) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}
