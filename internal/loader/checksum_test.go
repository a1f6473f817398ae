package loader

import (
	"errors"
	"testing"

	"github.com/born-ml/topology/internal/arch"
)

// TestFingerprintAcrossFormats verifies that the same graph read from
// different formats hashes identically.
func TestFingerprintAcrossFormats(t *testing.T) {
	var want string
	for f, src := range map[Format]string{FormatJSON: mnistJSON, FormatYAML: mnistYAML, FormatHCL: mnistHCL} {
		d, err := Decode([]byte(src), f)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", f, err)
		}
		x, err := arch.Extend(d)
		if err != nil {
			t.Fatalf("Extend failed: %v", err)
		}
		got, err := FingerprintHex(x)
		if err != nil {
			t.Fatalf("FingerprintHex failed: %v", err)
		}
		if len(got) != 64 {
			t.Errorf("Expected 64 hex chars, got %d", len(got))
		}
		if want == "" {
			want = got
		} else if got != want {
			t.Errorf("%s fingerprint %s differs from %s", f, got, want)
		}
	}
}

// TestVerifyFingerprint verifies mismatch detection.
func TestVerifyFingerprint(t *testing.T) {
	x, err := arch.Extend(mnist())
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}
	sum, err := FingerprintHex(x)
	if err != nil {
		t.Fatalf("FingerprintHex failed: %v", err)
	}

	if err := VerifyFingerprint(x, sum); err != nil {
		t.Errorf("Expected no error for matching fingerprint, got: %v", err)
	}

	d := mnist()
	d["H"].Config["activation_function"] = "tanh"
	changed, err := arch.Extend(d)
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}
	err = VerifyFingerprint(changed, sum)
	if !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("Expected ErrFingerprintMismatch, got: %v", err)
	}
}
