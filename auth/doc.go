// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session key generation and validation.

Session keys use HMAC-SHA256 over the session ID:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

Keys are URL-safe base64 without padding. Validation recomputes the key, so
nothing is stored alongside the session.

HashIP produces a short salted hash of a client address for logs.
*/
package auth
