package phraser

import (
	"fmt"
	"math/rand"
	"time"
)

type Phraser struct {
	phrases           []string
	lastPhraseIdx     int
	hasShuffledBefore bool
	rnd               *rand.Rand
}

type Option func(*Phraser)

// WithSeed makes the shuffling reproducible.
func WithSeed(seed int64) Option {
	return func(p *Phraser) {
		p.rnd = rand.New(rand.NewSource(seed))
	}
}

// New creates a new Phraser with the given phrases. It will always start with
// the first phrase, and then choose randomly between the other phrases for
// subsequent calls to Get.
//
// Usage:
//   phraser := phraser.New([]string{
//     "First, compute %s",
//     "Next, compute %s",
//     "Then compute %s",
//   })
//
//   for _, step := range steps {
//      fmt.Println(phraser.Get(step)) // always starts with the first phrase
//   }

func New(phrases []string, opts ...Option) *Phraser {
	p := &Phraser{
		// copy the phrases so we never shuffle the caller's slice
		phrases:           append([]string(nil), phrases...),
		lastPhraseIdx:     -1,
		hasShuffledBefore: false,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

func (p *Phraser) shuffle() {
	if len(p.phrases) < 2 {
		// no point shuffling fewer than 2 phrases
		return
	}

	p.rnd.Shuffle(len(p.phrases), func(i, j int) {
		p.phrases[i], p.phrases[j] = p.phrases[j], p.phrases[i]
	})
}

func (p *Phraser) Get(formatArgs ...any) string {
	if len(p.phrases) == 0 {
		return ""
	}
	if len(p.phrases) == 1 {
		return fmt.Sprintf(p.phrases[0], formatArgs...)
	}

	p.lastPhraseIdx++
	if p.lastPhraseIdx >= len(p.phrases) {
		// we've used all phrases, shuffle and start again
		if !p.hasShuffledBefore {
			// this is the first time we're shuffling the phrases, the first
			// phrase is still in `p.phrases` so we need to remove that so we
			// don't ever return it again
			p.phrases = p.phrases[1:]
			p.hasShuffledBefore = true
		}
		p.shuffle()
		p.lastPhraseIdx = 0
	}

	return fmt.Sprintf(p.phrases[p.lastPhraseIdx], formatArgs...)
}

// Narrate formats one phrase per item, in order.
func (p *Phraser) Narrate(items []string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, p.Get(item))
	}
	return lines
}
