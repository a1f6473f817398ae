package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/born-ml/topology/internal/arch"
)

// ErrFingerprintMismatch is returned by VerifyFingerprint.
var ErrFingerprintMismatch = errors.New("fingerprint mismatch")

// Fingerprint computes the SHA-256 of the canonical JSON encoding of x.
// Descriptions that extend to the same graph share a fingerprint regardless
// of the file format they were read from.
func Fingerprint(x *arch.Extended) ([32]byte, error) {
	data, err := EncodeExtended(x, FormatJSON)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// FingerprintHex returns Fingerprint as a lowercase hex string.
func FingerprintHex(x *arch.Extended) (string, error) {
	sum, err := Fingerprint(x)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}

// VerifyFingerprint compares the fingerprint of x against a hex string.
func VerifyFingerprint(x *arch.Extended, want string) error {
	got, err := FingerprintHex(x)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got %s, want %s", ErrFingerprintMismatch, got, want)
	}
	return nil
}
