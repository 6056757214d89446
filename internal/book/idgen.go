package book

import (
	"strings"

	"github.com/google/uuid"
)

// IDLength is the length of every generated book id.
const IDLength = 16

// UUIDGenerator takes the leading hex digits of a random UUID.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:IDLength]
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string {
	return f()
}
