package ambient

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/timer"
)

var epoch = time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC)

type postedAt struct {
	n         domain.Notification
	postedAt  time.Time
	retiredAt time.Time
}

type recordingBoard struct {
	clock   timer.Clock
	ids     domain.IDSequence
	posts   []*postedAt
	live    map[int64]*postedAt
	retires int
}

func newRecordingBoard(clock timer.Clock) *recordingBoard {
	return &recordingBoard{clock: clock, live: make(map[int64]*postedAt)}
}

func (b *recordingBoard) Post(tmpl catalog.Template) domain.Notification {
	now := b.clock.Now()
	n := domain.NewNotification(b.ids.Next(now), tmpl.Text, tmpl.Category, tmpl.Icon, now)
	p := &postedAt{n: n, postedAt: now}
	b.posts = append(b.posts, p)
	b.live[n.ID] = p
	return n
}

func (b *recordingBoard) Retire(id int64) {
	b.retires++
	if p, ok := b.live[id]; ok {
		p.retiredAt = b.clock.Now()
		delete(b.live, id)
	}
}

func testTemplates() []catalog.Template {
	return []catalog.Template{
		{Text: "giveaway", Category: domain.CategoryGiveaway, Icon: domain.IconGift},
		{Text: "delay", Category: domain.CategoryDelay, Icon: domain.IconClock},
		{Text: "discovery", Category: domain.CategoryDiscovery, Icon: domain.IconMusic},
	}
}

func newTestGenerator(seed uint64) (*Generator, *recordingBoard, *timer.ManualClock, *sync.Mutex) {
	clock := timer.NewManualClock(epoch)
	board := newRecordingBoard(clock)
	mu := &sync.Mutex{}
	g := NewGenerator(
		Config{Period: 8 * time.Second, DisplayDuration: 4 * time.Second},
		testTemplates(),
		rand.New(rand.NewPCG(seed, seed)),
		board,
		clock,
		mu,
	)
	return g, board, clock, mu
}

func TestGenerator_TwoPeriodsProduceTwoBubbles(t *testing.T) {
	g, board, clock, mu := newTestGenerator(42)

	mu.Lock()
	g.Start()
	mu.Unlock()

	clock.Advance(16 * time.Second)

	if len(board.posts) != 2 {
		t.Fatalf("posted %d bubbles, want 2", len(board.posts))
	}

	// The second bubble was posted at t=16 and is still visible.
	first, second := board.posts[0], board.posts[1]
	if !first.postedAt.Equal(epoch.Add(8 * time.Second)) {
		t.Errorf("first posted at %v, want t+8s", first.postedAt.Sub(epoch))
	}
	if got := first.retiredAt.Sub(first.postedAt); got != 4*time.Second {
		t.Errorf("first lived %v, want 4s", got)
	}
	if !second.postedAt.Equal(epoch.Add(16 * time.Second)) {
		t.Errorf("second posted at %v, want t+16s", second.postedAt.Sub(epoch))
	}

	clock.Advance(4 * time.Second)
	if got := second.retiredAt.Sub(second.postedAt); got != 4*time.Second {
		t.Errorf("second lived %v, want 4s", got)
	}
	if board.retires != 2 {
		t.Errorf("retires = %d, want 2", board.retires)
	}
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	run := func() []string {
		g, board, clock, mu := newTestGenerator(7)
		mu.Lock()
		g.Start()
		mu.Unlock()
		clock.Advance(80 * time.Second)

		texts := make([]string, 0, len(board.posts))
		for _, p := range board.posts {
			texts = append(texts, p.n.Text)
		}
		return texts
	}

	a, b := run(), run()
	if len(a) != 10 || len(b) != 10 {
		t.Fatalf("got %d and %d bubbles, want 10 each", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("bubble %d differs between runs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGenerator_OnlyAmbientCategories(t *testing.T) {
	g, board, clock, mu := newTestGenerator(1)

	mu.Lock()
	g.Start()
	mu.Unlock()
	clock.Advance(200 * time.Second)

	for _, p := range board.posts {
		if !p.n.Category.IsAmbient() {
			t.Errorf("bubble %d has non-ambient category %q", p.n.ID, p.n.Category)
		}
	}
}

func TestGenerator_StopCancelsTickAndExpiries(t *testing.T) {
	g, board, clock, mu := newTestGenerator(3)

	mu.Lock()
	g.Start()
	mu.Unlock()

	// t=8 posts a bubble whose expiry is due at t=12.
	clock.Advance(9 * time.Second)

	mu.Lock()
	if g.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2 (tick + expiry)", g.Pending())
	}
	if n := g.Stop(); n != 2 {
		t.Errorf("Stop() = %d, want 2", n)
	}
	mu.Unlock()

	clock.Advance(60 * time.Second)

	if len(board.posts) != 1 {
		t.Errorf("posted %d bubbles after stop, want 1", len(board.posts))
	}
	if board.retires != 0 {
		t.Errorf("retired %d bubbles after stop, want 0", board.retires)
	}
	if clock.Pending() != 0 {
		t.Errorf("clock still has %d pending timers", clock.Pending())
	}
}

func TestGenerator_StartTwiceSchedulesOneTick(t *testing.T) {
	g, board, clock, mu := newTestGenerator(5)

	mu.Lock()
	g.Start()
	g.Start()
	if g.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", g.Pending())
	}
	mu.Unlock()

	clock.Advance(8 * time.Second)
	if len(board.posts) != 1 {
		t.Errorf("posted %d bubbles, want 1", len(board.posts))
	}
}
