package id

import "github.com/google/uuid"

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random (version 4) UUID strings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
