package index_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/coactgraph/event"
	"github.com/katalvlaran/coactgraph/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_GroupsByKey(t *testing.T) {
	events := []event.Event{
		{ActorID: 1, Timestamp: 100, Keys: []string{"u1", "u2"}},
		{ActorID: 2, Timestamp: 105, Keys: []string{"u2"}},
		{ActorID: 3, Timestamp: 101, Keys: []string{"u1"}},
		{ActorID: 4, Timestamp: 99},
	}
	idx, err := index.Build(events)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 4, idx.Entries())
	assert.Equal(t, 4, idx.Events())
	assert.Equal(t, []string{"u1", "u2"}, idx.Keys())

	g, ok := idx.Group("u1")
	require.True(t, ok)
	assert.ElementsMatch(t, []index.Entry{{Timestamp: 100, Actor: 1}, {Timestamp: 101, Actor: 3}}, g.Entries)

	_, ok = idx.Group("missing")
	assert.False(t, ok)
}

func TestBuild_KeepsDuplicates(t *testing.T) {
	events := []event.Event{
		{ActorID: 1, Timestamp: 100, Keys: []string{"k"}},
		{ActorID: 1, Timestamp: 100, Keys: []string{"k"}},
		{ActorID: 2, Timestamp: 100, Keys: []string{"k", "k"}},
	}
	idx, err := index.Build(events)
	require.NoError(t, err)
	g, _ := idx.Group("k")
	assert.Equal(t, 4, g.Len())
}

func TestBuild_RejectsEmptyKey(t *testing.T) {
	_, err := index.Build([]event.Event{
		{ActorID: 1, Timestamp: 1, Keys: []string{"a"}},
		{ActorID: 2, Timestamp: 2, Keys: []string{""}},
	})
	require.ErrorIs(t, err, event.ErrEmptyKey)
}

func TestGroupSort_TieBreakOnActor(t *testing.T) {
	g := &index.Group{Key: "k", Entries: []index.Entry{
		{Timestamp: 101, Actor: 1},
		{Timestamp: 100, Actor: 9},
		{Timestamp: 100, Actor: 2},
		{Timestamp: 99, Actor: 5},
	}}
	assert.False(t, g.IsSorted())
	g.Sort()
	assert.True(t, g.IsSorted())
	assert.Equal(t, []index.Entry{
		{Timestamp: 99, Actor: 5},
		{Timestamp: 100, Actor: 2},
		{Timestamp: 100, Actor: 9},
		{Timestamp: 101, Actor: 1},
	}, g.Entries)
}

func TestSort_PermutationInvariant(t *testing.T) {
	events := make([]event.Event, 0, 200)
	for i := 0; i < 200; i++ {
		events = append(events, event.Event{
			ActorID:   int64(i % 17),
			Timestamp: int64(i % 13),
			Keys:      []string{[]string{"a", "b", "c"}[i%3]},
		})
	}
	base, err := index.Build(events)
	require.NoError(t, err)
	base.Sort()

	rng := rand.New(rand.NewSource(7))
	shuffled := append([]event.Event(nil), events...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	other, err := index.Build(shuffled)
	require.NoError(t, err)
	other.Sort()

	require.Equal(t, base.Keys(), other.Keys())
	for _, k := range base.Keys() {
		g1, _ := base.Group(k)
		g2, _ := other.Group(k)
		assert.Equal(t, g1.Entries, g2.Entries, k)
	}
}

type failingSource struct {
	n   int
	err error
}

func (s *failingSource) Next() bool {
	s.n++
	return s.n <= 2
}
func (s *failingSource) Event() event.Event {
	return event.Event{ActorID: int64(s.n), Timestamp: 1, Keys: []string{"k"}}
}
func (s *failingSource) Error() error { return s.err }
func (s *failingSource) Close() error { return nil }

func TestFromSource_Errors(t *testing.T) {
	_, err := index.FromSource(context.Background(), nil)
	require.ErrorIs(t, err, event.ErrNilSource)

	boom := errors.New("decode failed")
	_, err = index.FromSource(context.Background(), &failingSource{err: boom})
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = index.FromSource(ctx, &failingSource{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScan_StopsEarly(t *testing.T) {
	idx, err := index.Build([]event.Event{
		{ActorID: 1, Timestamp: 1, Keys: []string{"a", "b", "c"}},
	})
	require.NoError(t, err)

	var seen []string
	idx.Scan(func(g *index.Group) bool {
		seen = append(seen, g.Key)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Len(t, idx.Groups(), 3)
}
