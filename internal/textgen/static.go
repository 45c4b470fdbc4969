package textgen

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Static picks praise phrases from the built-in bank. It never fails,
// which makes it the closing link of every provider chain.
type Static struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewStatic() *Static {
	return newStaticWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newStaticWithSource(rng *rand.Rand) *Static {
	return &Static{rng: rng}
}

func (s *Static) Generate(_ context.Context, req Request) (string, error) {
	templates, ok := phraseBank[req.Category]
	if !ok {
		templates = genericPhrases
	}

	s.mu.Lock()
	template := templates[s.rng.Intn(len(templates))]
	s.mu.Unlock()

	return renderPhrase(template, req.Player, req.Value), nil
}

func renderPhrase(template, player string, value int) string {
	replacer := strings.NewReplacer(
		"{nome}", player,
		"{valor}", strconv.Itoa(value),
	)
	return replacer.Replace(template)
}
