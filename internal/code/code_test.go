package code

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("entropy exhausted")
}

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "short code", length: 4},
		{name: "default length", length: 8},
		{name: "long code", length: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			gen := NewGenerator(tt.length)

			for range 100 {
				c, err := gen.Generate()
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(c).To(HaveLen(tt.length))
				for _, r := range c {
					g.Expect(strings.ContainsRune(Alphabet, r)).To(BeTrue(),
						"character %q not in alphabet", r)
				}
			}
		})
	}
}

func TestGenerator_GenerateDistinctCodes(t *testing.T) {
	g := NewWithT(t)

	gen := NewGenerator(8)

	seen := make(map[string]bool)
	for range 1000 {
		c, err := gen.Generate()
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(seen[c]).To(BeFalse(), "collision detected: %s", c)
		seen[c] = true
	}
}

func TestGenerator_GenerateRandError(t *testing.T) {
	g := NewWithT(t)

	gen := NewGenerator(8)
	gen.rand = failingReader{}

	_, err := gen.Generate()

	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("failed to generate device code"))
	g.Expect(err.Error()).To(ContainSubstring("entropy exhausted"))
}
