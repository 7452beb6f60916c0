// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidSessionKey = errors.New("invalid session key")

// GenerateSessionKey creates an HMAC-based key for a session.
// This is deterministic and verifiable
func GenerateSessionKey(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSessionKey checks if the provided key is valid for the session
func ValidateSessionKey(sessionID, key, salt string) error {
	if key == "" {
		return ErrInvalidSessionKey
	}
	expected := GenerateSessionKey(sessionID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidSessionKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits)
	return hex.EncodeToString(sum[:8])
}
