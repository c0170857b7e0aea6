package identifier

import (
	"math/rand/v2"
	"sync"
)

// Template is the canonical layout: x is a random hex digit, y is the variant
// digit, 4 is the version marker.
const Template = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

// Length is the number of characters in an Identifier.
const Length = len(Template)

const hexDigits = "0123456789abcdef"

// Identifier is a UUID-v4-shaped display string.
type Identifier string

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Generator formats identifiers from a Source. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	src Source
}

// NewGenerator returns a generator drawing from src, or from the math/rand/v2
// global source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// New returns an identifier from the default generator.
func New() Identifier {
	return defaultGenerator.Generate()
}

// Generate walks Template and fills every random slot from the source.
func (g *Generator) Generate() Identifier {
	var out [Length]byte

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < Length; i++ {
		switch c := Template[i]; c {
		case 'x':
			out[i] = hexDigits[g.src.IntN(16)&0xf]
		case 'y':
			// 10xx: keep the low two bits, set the high bit.
			out[i] = hexDigits[g.src.IntN(16)&0x3|0x8]
		default:
			out[i] = c
		}
	}
	return Identifier(out[:])
}
