// Package auth implements the credential string format and the random value
// generation behind session signatures and action token URLs.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/classline/backend/internal/domain"
)

// signatureBytes is the amount of randomness behind one session signature.
const signatureBytes = 32

// tokenURLBytes is the amount of randomness behind one action token URL.
// 24 bytes = 192 bits, far beyond what is guessable within any token TTL.
const tokenURLBytes = 24

// NewSignature returns a fresh random session signature as a hex string.
// The value is opaque and only ever compared for equality against the
// account's stored signature.
func NewSignature() (string, error) {
	b := make([]byte, signatureBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate signature: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewTokenURL returns a fresh random action token identifier, URL-safe
// base64 without padding.
func NewTokenURL() (string, error) {
	b := make([]byte, tokenURLBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token url: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// FormatCredential renders a credential string as "{accountId}.{signature}".
func FormatCredential(accountID int64, signature string) string {
	return strconv.FormatInt(accountID, 10) + "." + signature
}

// ParseCredential splits a credential string into account id and signature.
// Returns domain.ErrMalformedCredential unless the string is exactly
// "{integer}.{hex}" with a non-empty signature part.
func ParseCredential(credential string) (int64, string, error) {
	id, sig, ok := strings.Cut(credential, ".")
	if !ok || sig == "" {
		return 0, "", domain.ErrMalformedCredential
	}

	accountID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, "", domain.ErrMalformedCredential
	}

	if _, err := hex.DecodeString(sig); err != nil {
		return 0, "", domain.ErrMalformedCredential
	}

	return accountID, sig, nil
}
