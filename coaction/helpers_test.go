package coaction_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/coactgraph/event"
)

// burst returns events where every actor in actors references key at ts+offset[i].
func burst(key string, ts int64, actors []int64, offsets []int64) []event.Event {
	out := make([]event.Event, len(actors))
	for i, a := range actors {
		out[i] = event.Event{ActorID: a, Timestamp: ts + offsets[i], Keys: []string{key}}
	}
	return out
}

// coordinated builds a dataset in which actors 1 and 2 share `repeats` keys
// within one second, while actor 3 posts the same keys an hour later.
func coordinated(repeats int) []event.Event {
	var out []event.Event
	for i := 0; i < repeats; i++ {
		key := fmt.Sprintf("https://example.org/%d", i)
		ts := int64(1_700_000_000 + i*10_000)
		out = append(out, burst(key, ts, []int64{1, 2, 3}, []int64{0, 1, 3600})...)
	}
	return out
}

// randomEvents produces a seeded synthetic log over few actors and keys so
// that windows overlap heavily.
func randomEvents(seed int64, n int) []event.Event {
	rng := rand.New(rand.NewSource(seed))
	out := make([]event.Event, n)
	for i := range out {
		keys := make([]string, rng.Intn(3))
		for k := range keys {
			keys[k] = fmt.Sprintf("k%d", rng.Intn(15))
		}
		out[i] = event.Event{
			ActorID:   int64(rng.Intn(12)),
			Timestamp: int64(rng.Intn(300)),
			Keys:      keys,
		}
	}
	return out
}

func shuffled(seed int64, events []event.Event) []event.Event {
	out := append([]event.Event(nil), events...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
