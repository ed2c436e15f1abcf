package shortener

import (
	"math/rand/v2"

	"github.com/sqids/sqids-go"
)

const (
	// CodeLength is the length of every generated code.
	CodeLength = 8

	// maxSeed keeps the encoded number within CodeLength characters.
	maxSeed = 61 * 61 * 61 * 61 * 61 * 61 * 61
)

type Shortener struct {
	sqids *sqids.Sqids
}

func New() (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: CodeLength,
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

func (s *Shortener) Generate(id uint64) (string, error) {
	return s.sqids.Encode([]uint64{id})
}

// NewCode encodes a random seed. Callers retry on a store collision.
func (s *Shortener) NewCode() (string, error) {
	return s.Generate(rand.Uint64N(maxSeed))
}
