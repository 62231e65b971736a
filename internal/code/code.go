// Package code generates the short device codes that humans type into
// the sign-in page. Codes are random but not guaranteed unique; the
// session store rejects collisions and callers retry.
package code

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet excludes characters that are easy to confuse when read off a
// small screen and hand-typed (I, L, O, 0, 1).
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

type Generator struct {
	length int

	rand io.Reader
}

func NewGenerator(length int) *Generator {
	return &Generator{length: length}
}

func (g *Generator) Generate() (string, error) {
	reader := g.rand
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, g.length)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return "", fmt.Errorf("failed to generate device code: %w", err)
	}
	for i := range buf {
		buf[i] = Alphabet[int(buf[i])%len(Alphabet)]
	}
	return string(buf), nil
}
