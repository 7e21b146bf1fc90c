// Package prompt rolls the three-word writing prompt.
package prompt

import (
	"math/rand/v2"
	"sync"
	"time"
)

var nouns = []string{
	"Mirror", "Ocean", "Clock", "Forest", "Candle", "Cloud", "Dust", "Thread", "Path", "Flame",
	"Mountain", "River", "Book", "Door", "Window", "Sky", "Star", "Moon", "Sun", "Tree",
	"Bridge", "Island", "Desk", "Chair", "Pillow", "Bottle", "Glass", "Ring", "Key", "Coin",
	"Shadow", "Light", "Feather", "Stone", "Rain", "Snow", "Wind", "Fire", "Earth", "Water",
}

var verbs = []string{
	"Melt", "Breathe", "Collapse", "Bloom", "Chase", "Whisper", "Freeze", "Drift", "Grow", "Scatter",
	"Dance", "Sing", "Float", "Break", "Build", "Create", "Destroy", "Imagine", "Dream", "Fly",
	"Swim", "Run", "Jump", "Climb", "Fall", "Rise", "Shine", "Fade", "Transform", "Evolve",
	"Explore", "Discover", "Connect", "Separate", "Begin", "End", "Remember", "Forget", "Reflect", "Wonder",
}

var emotions = []string{
	"Nostalgia", "Anger", "Joy", "Serenity", "Confusion", "Hope", "Anxiety", "Delight", "Fear", "Wonder",
	"Love", "Hatred", "Excitement", "Boredom", "Curiosity", "Dread", "Peace", "Frustration", "Surprise", "Awe",
	"Gratitude", "Envy", "Pride", "Shame", "Trust", "Suspicion", "Longing", "Satisfaction", "Doubt", "Confidence",
	"Melancholy", "Bliss", "Contentment", "Regret", "Relief", "Anticipation", "Apathy", "Sympathy", "Loneliness", "Euphoria",
}

// Words is one rolled prompt.
type Words struct {
	Noun    string `json:"noun"`
	Verb    string `json:"verb"`
	Emotion string `json:"emotion"`
}

func (w Words) String() string {
	return w.Noun + " · " + w.Verb + " · " + w.Emotion
}

// Dice picks words. It is safe for concurrent use.
type Dice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice returns dice drawing from src. A nil src seeds from the clock.
func NewDice(src rand.Source) *Dice {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Dice{rng: rand.New(src)}
}

// Roll picks a fresh noun, verb and emotion.
func (d *Dice) Roll() Words {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Words{
		Noun:    nouns[d.rng.IntN(len(nouns))],
		Verb:    verbs[d.rng.IntN(len(verbs))],
		Emotion: emotions[d.rng.IntN(len(emotions))],
	}
}

// Nouns, Verbs and Emotions expose copies of the word lists.
func Nouns() []string    { return append([]string(nil), nouns...) }
func Verbs() []string    { return append([]string(nil), verbs...) }
func Emotions() []string { return append([]string(nil), emotions...) }
