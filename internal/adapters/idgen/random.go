// Package idgen synthesizes 24-character descriptor object identifiers.
package idgen

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
)

// idBytes is the number of random bytes in an identifier (24 hex characters).
const idBytes = 12

var _ ports.IDGenerator = (*Random)(nil)

// Random draws identifiers from random UUIDs.
type Random struct{}

// NewRandom creates a new Random generator.
func NewRandom() *Random {
	return &Random{}
}

// NewID returns 96 random bits of a version 4 UUID as upper-case hex. Byte 6 (version) and
// byte 8 (variant) carry fixed bits and are skipped.
func (*Random) NewID(string) domain.ObjectID {
	u := uuid.New()
	b := make([]byte, 0, idBytes)
	b = append(b, u[0:6]...)
	b = append(b, u[7])
	b = append(b, u[9:14]...)
	return domain.ObjectID(strings.ToUpper(hex.EncodeToString(b)))
}
