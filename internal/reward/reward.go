// Package reward implements the scratch-card rewards and celebration
// messages shown when tasks are completed.
package reward

import (
	"context"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
)

// CardCount is the number of scratch cards in a deck.
const CardCount = 4

// Reward is what a scratched card reveals.
type Reward struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Card is the state of one scratch card.
type Card struct {
	Index    int
	Revealed bool
	Reward   Reward
}

//nolint:gochecknoglobals // fixed reward table
var rewards = []Reward{
	{Emoji: "🌟", Title: "Star Power", Description: "You're shining bright today! +5 to motivation."},
	{Emoji: "🔥", Title: "On Fire", Description: "You're on a productivity streak! +8 to efficiency."},
	{Emoji: "💎", Title: "Gem Finder", Description: "You discovered a productivity gem! +10 to focus."},
	{Emoji: "🚀", Title: "Rocket Boost", Description: "Blast through your tasks! +12 to speed."},
	{Emoji: "🧠", Title: "Brain Power", Description: "Mind power activated! +15 to concentration."},
	{Emoji: "🏆", Title: "Champion", Description: "You're a productivity champion! +20 to achievement."},
}

//nolint:gochecknoglobals // fixed message table
var messages = []string{
	"Great job completing your task!",
	"You're making excellent progress!",
	"One step closer to your goals!",
	"Keep up the amazing work!",
	"You're on a productivity streak!",
}

// Rewards returns every reward a card can reveal.
func Rewards() []Reward {
	return slices.Clone(rewards)
}

// Message returns a random celebration message.
func Message(rng *rand.Rand) string {
	return messages[rng.IntN(len(messages))]
}

// Persister stores revealed cards.
type Persister interface {
	LoadRewards(ctx context.Context) map[int]Reward
	SaveRewards(ctx context.Context, revealed map[int]Reward)
}

// Deck tracks which cards were scratched and what they revealed.
type Deck struct {
	mu       sync.Mutex
	p        Persister
	rng      *rand.Rand
	revealed map[int]Reward
}

// NewDeck loads previously revealed cards. Entries for cards outside the
// deck are ignored.
func NewDeck(ctx context.Context, p Persister, rng *rand.Rand) *Deck {
	revealed := make(map[int]Reward)
	for i, r := range p.LoadRewards(ctx) {
		if i >= 0 && i < CardCount {
			revealed[i] = r
		}
	}
	return &Deck{p: p, rng: rng, revealed: revealed}
}

// Scratch reveals card index. A card that was already scratched keeps its
// reward and fresh is false. A new reveal never repeats a reward currently
// shown on another card until all rewards have been shown.
func (d *Deck) Scratch(ctx context.Context, index int) (Reward, bool, error) {
	if index < 0 || index >= CardCount {
		return Reward{}, false, cmerrors.CardOutOfRangeError{Index: index, Count: CardCount}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.revealed[index]; ok {
		return r, false, nil
	}

	available := slices.DeleteFunc(Rewards(), func(r Reward) bool {
		for _, shown := range d.revealed {
			if shown.Title == r.Title {
				return true
			}
		}
		return false
	})
	if len(available) == 0 {
		available = Rewards()
	}

	r := available[d.rng.IntN(len(available))]
	d.revealed[index] = r
	d.p.SaveRewards(ctx, maps.Clone(d.revealed))
	return r, true, nil
}

// Cards returns the state of every card in index order.
func (d *Deck) Cards() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()

	cards := make([]Card, CardCount)
	for i := range cards {
		r, ok := d.revealed[i]
		cards[i] = Card{Index: i, Revealed: ok, Reward: r}
	}
	return cards
}
