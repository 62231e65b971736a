package provider

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	. "github.com/onsi/gomega"
)

func TestPKCEVerifier(t *testing.T) {
	g := NewWithT(t)

	const allowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._~"

	seen := make(map[string]bool)
	for range 100 {
		v, err := PKCEVerifier()
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(len(v)).To(And(BeNumerically(">=", 43), BeNumerically("<=", 128)))
		for _, c := range v {
			g.Expect(allowed).To(ContainSubstring(string(c)))
		}
		g.Expect(seen[v]).To(BeFalse())
		seen[v] = true
	}
}

func TestPKCES256Challenge(t *testing.T) {
	g := NewWithT(t)

	const verifier = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	sum := sha256.Sum256([]byte(verifier))
	expected := base64.RawURLEncoding.EncodeToString(sum[:])

	g.Expect(PKCES256Challenge(verifier)).To(Equal(expected))
	g.Expect(PKCES256Challenge(verifier)).ToNot(ContainSubstring("="))
}
