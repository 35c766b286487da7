package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingClicks struct {
	mu      sync.Mutex
	counts  map[uuid.UUID]int
	block   chan struct{}
	fail    error
	started chan struct{}
}

func newCountingClicks() *countingClicks {
	return &countingClicks{counts: make(map[uuid.UUID]int)}
}

func (c *countingClicks) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	if c.started != nil {
		c.started <- struct{}{}
	}
	if c.block != nil {
		<-c.block
	}
	if c.fail != nil {
		return c.fail
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[id]++
	return nil
}

func (c *countingClicks) count(id uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id]
}

func TestClickRecorder_CloseDrainsQueue(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newCountingClicks()
	rec := NewClickRecorder(repo, 16)
	id := uuid.New()
	for i := 0; i < 10; i++ {
		require.True(t, rec.Record(id))
	}
	rec.Close()

	assert.Equal(t, 10, repo.count(id))
	assert.False(t, rec.Record(id), "closed recorder rejects clicks")
	rec.Close()
}

func TestClickRecorder_DropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newCountingClicks()
	repo.block = make(chan struct{})
	repo.started = make(chan struct{}, 1)
	rec := NewClickRecorder(repo, 1)
	id := uuid.New()

	require.True(t, rec.Record(id))
	<-repo.started // worker holds the first click
	require.True(t, rec.Record(id), "queue has room for one")
	assert.False(t, rec.Record(id), "full queue drops the click")

	close(repo.block)
	rec.Close()
	assert.Equal(t, 2, repo.count(id))
}

func TestClickRecorder_FailuresDoNotStopWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newCountingClicks()
	repo.fail = errors.New("boom")
	rec := NewClickRecorder(repo, 4)
	require.True(t, rec.Record(uuid.New()))
	require.True(t, rec.Record(uuid.New()))
	rec.Close()
}

func TestClickRecorder_WithStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	link := f.create(t, "a", "Destaques", 0)

	rec := NewClickRecorder(f.links, 8)
	rec.Record(link.ID)
	rec.Record(link.ID)
	rec.Record(uuid.New())
	rec.Close()

	got, err := f.links.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ClickCount)
}
