package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config SecurityConfig
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{config: config}
}

// Enabled reports whether a shared secret is configured.
func (v *SecurityValidator) Enabled() bool {
	return v.config.Secret != ""
}

// ValidateGitHubSignature verifies GitHub webhook signature.
// Without a configured secret every request passes.
func (v *SecurityValidator) ValidateGitHubSignature(payload []byte, signature string) error {
	if !v.Enabled() {
		return nil
	}

	// GitHub sends signature as "sha256=<hex>"
	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: invalid signature format", ErrInvalidSignature)
	}

	expectedSig, err := hex.DecodeString(signature[len(signaturePrefix):])
	if err != nil {
		return fmt.Errorf("%w: invalid signature hex encoding: %v", ErrInvalidSignature, err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)
	actualSig := mac.Sum(nil)

	// Constant-time comparison on raw bytes
	if !hmac.Equal(expectedSig, actualSig) {
		return fmt.Errorf("%w: signature verification failed", ErrInvalidSignature)
	}

	return nil
}

// Sign returns the X-Hub-Signature-256 value GitHub would send for payload.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
