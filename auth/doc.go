// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity, password and token utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, attempt) // ErrInvalidCredentials on mismatch

Passwords shorter than MinPasswordLength are rejected with ErrPasswordTooShort.

# Session Tokens

Session tokens are HS256 JWTs whose subject is the user ID:

	token, err := auth.IssueToken(userID, secret, 24*time.Hour)
	userID, err := auth.ParseToken(token, secret)

Expired, tampered or malformed tokens all return ErrInvalidToken. Tokens are
stateless; nothing is stored server side.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()

# IP Hashing

For privacy-preserving vote audit data:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
