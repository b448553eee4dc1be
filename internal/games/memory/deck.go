package memory

import "math/rand"

// Card is one face-down or face-up card.
type Card struct {
	Symbol  string
	Flipped bool
	Matched bool
}

// Deck holds the shuffled pairs and the cards currently turned over.
type Deck struct {
	cards   []Card
	pending []int // indices flipped this turn, at most two
	pairs   int
	moves   int
}

// NewDeck builds two cards per symbol and shuffles them with rng.
func NewDeck(symbols []string, rng *rand.Rand) *Deck {
	cards := make([]Card, 0, len(symbols)*2)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s}, Card{Symbol: s})
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Card returns the card at index i.
func (d *Deck) Card(i int) Card { return d.cards[i] }

// Moves returns how many pairs of cards have been turned over.
func (d *Deck) Moves() int { return d.moves }

// Pairs returns the number of matched pairs.
func (d *Deck) Pairs() int { return d.pairs }

// TotalPairs returns the number of pairs in the deck.
func (d *Deck) TotalPairs() int { return len(d.cards) / 2 }

// Complete reports whether every pair has been matched.
func (d *Deck) Complete() bool { return d.pairs == d.TotalPairs() }

// Pending returns the number of cards waiting to be resolved.
func (d *Deck) Pending() int { return len(d.pending) }

// Flip turns card i face up. It is a no-op for flipped or matched cards
// and while two cards are already pending. Turning the second card counts
// one move.
func (d *Deck) Flip(i int) bool {
	if i < 0 || i >= len(d.cards) || len(d.pending) >= 2 {
		return false
	}
	c := &d.cards[i]
	if c.Flipped || c.Matched {
		return false
	}
	c.Flipped = true
	d.pending = append(d.pending, i)
	if len(d.pending) == 2 {
		d.moves++
	}
	return true
}

// PendingMatch reports whether the two pending cards share a symbol.
// ok is false unless exactly two cards are pending.
func (d *Deck) PendingMatch() (match, ok bool) {
	if len(d.pending) != 2 {
		return false, false
	}
	return d.cards[d.pending[0]].Symbol == d.cards[d.pending[1]].Symbol, true
}

// Resolve settles the pending pair: matched cards stay up, others flip back.
func (d *Deck) Resolve() {
	match, ok := d.PendingMatch()
	if !ok {
		return
	}
	for _, i := range d.pending {
		if match {
			d.cards[i].Matched = true
		} else {
			d.cards[i].Flipped = false
		}
	}
	if match {
		d.pairs++
	}
	d.pending = d.pending[:0]
}
