package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
)

// Generator hands out version 7 UUIDs so reaction and user ids sort by creation time.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID falls back to a random v4 id if the v7 clock source fails.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
