package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from the random stream of the Ed25519 suite.
type CryptoSource struct {
	stream cipher.Stream
}

func NewCryptoSource() *CryptoSource {
	return &CryptoSource{stream: suite.RandomStream()}
}

// Intn uses rejection sampling so that every value is equally likely.
func (s *CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("deck: invalid argument to Intn")
	}
	max := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%max
	for {
		var buf [8]byte
		s.stream.XORKeyStream(buf[:], buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % max)
		}
	}
}

// SeededSource is a reproducible Source for tests and replays.
type SeededSource struct {
	rng *rand.Rand
}

func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle permutes the whole shoe (Fisher-Yates) and rewinds it, so every
// card becomes drawable again.
func (d *Deck) Shuffle() error {
	if d.cardCollection == nil {
		return errors.New("deck not prepared")
	}
	if d.Source == nil {
		d.Source = NewCryptoSource()
	}
	d.lastDrawnCard = 0
	perm := permutation(len(d.cardCollection), d.Source)
	tmp := make([]int, len(d.cardCollection))
	copy(tmp, d.cardCollection)
	for i := range d.cardCollection {
		d.cardCollection[i] = tmp[perm[i]]
	}
	return nil
}

// Helper function to generate a random permutation of size permSize
func permutation(permSize int, src Source) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
