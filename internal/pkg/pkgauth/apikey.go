package pkgauth

import "crypto/subtle"

// APIKey validates presented tokens against a single configured secret.
type APIKey struct {
	secret []byte
}

// NewAPIKey returns a checker for the given secret.
func NewAPIKey(secret string) *APIKey {
	return &APIKey{secret: []byte(secret)}
}

// Configured reports whether a non-empty secret was provided.
func (k *APIKey) Configured() bool {
	return len(k.secret) > 0
}

// IsValid reports whether presented equals the configured secret.
func (k *APIKey) IsValid(presented string) bool {
	if !k.Configured() || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), k.secret) == 1
}
