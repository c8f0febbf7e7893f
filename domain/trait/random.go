package trait

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the source of uniform draws in [0, 1).
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewRand returns a Rand safe for concurrent use.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

var processRand = NewRand(time.Now().UnixNano())

// GenerateRandom draws one option per category, each category independently,
// with probability proportional to the option weights. A nil r uses a
// process wide source.
func (c *Catalog) GenerateRandom(r Rand) Selection {
	if r == nil {
		r = processRand
	}
	res := make(Selection, len(c.categories))
	for _, cat := range c.categories {
		opt, _ := c.Pick(cat.name, r.Float64()*100)
		res[cat.name] = opt.Name
	}
	return res
}
