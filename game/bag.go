package game

import "math/rand/v2"

// Bag deals piece kinds using the 7-bag system: each run of seven draws is
// a random permutation of all seven kinds, so droughts are bounded.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag fed by the given random source.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next deals the next kind, refilling and reshuffling when the bag runs out.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.queue = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// TintPicker assigns palette tints to spawned pieces. Picks are mostly
// uniform, but once a few distinct pieces are on the board there is a
// one-in-three chance of re-dealing the oldest recent tint, which keeps
// single-color rows reachable in practice.
type TintPicker struct {
	rng    *rand.Rand
	recent []Tint
}

// NewTintPicker creates a picker fed by the given random source.
func NewTintPicker(rng *rand.Rand) *TintPicker {
	return &TintPicker{rng: rng}
}

// Next returns the tint for the next spawned piece.
func (t *TintPicker) Next() Tint {
	var tint Tint
	if len(t.recent) > 2 && t.rng.IntN(3) > 1 {
		tint = t.recent[0]
		t.recent = t.recent[:0]
	} else {
		tint = Tint(t.rng.IntN(PaletteSize))
	}
	t.recent = append(t.recent, tint)
	return tint
}
