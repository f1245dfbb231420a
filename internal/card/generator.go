package card

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// DefaultIIN is the issuer prefix of every card this bank issues
const DefaultIIN = "400000"

// Generator issues card numbers and PINs under a fixed IIN.
//
// The random source does not need to be cryptographically secure; uniqueness
// of issued numbers is enforced by the store.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	iin string
}

// NewGenerator creates a Generator for iin. A nil rnd selects a time-seeded
// PCG source.
func NewGenerator(iin string, rnd *rand.Rand) (*Generator, error) {
	if len(iin) != IINLength || !IsDigits(iin) {
		return nil, fmt.Errorf("iin must be %d digits, got %q", IINLength, iin)
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Generator{rnd: rnd, iin: iin}, nil
}

// IIN returns the issuer prefix used by the generator.
func (g *Generator) IIN() string {
	return g.iin
}

// Number returns a new 16-digit card number: IIN, 9 random digits and the
// check digit.
func (g *Generator) Number() string {
	body := g.iin + g.digits(bodyLength-IINLength)
	cd, err := Checksum(body)
	if err != nil {
		// body is always 15 digits
		panic(err)
	}
	return body + string(cd)
}

// PIN returns 4 independent random digits; leading zeros are kept.
func (g *Generator) PIN() string {
	return g.digits(PINLength)
}

func (g *Generator) digits(n int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte('0' + byte(g.rnd.IntN(10)))
	}
	return sb.String()
}
