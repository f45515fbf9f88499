// Package ambient produces the randomly chosen, time-triggered bubbles shown
// while a festival detail context is active.
package ambient

import (
	"sync"
	"time"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/timer"
)

const (
	DefaultPeriod          = 8 * time.Second
	DefaultDisplayDuration = 4 * time.Second
)

// Source picks template indexes. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Board receives generated bubbles. Both methods are called with the
// generator's lock held.
type Board interface {
	Post(tmpl catalog.Template) domain.Notification
	Retire(id int64)
}

type Config struct {
	Period          time.Duration
	DisplayDuration time.Duration
}

// Generator posts one random ambient bubble per period and retires each bubble
// after the display duration.
//
// Generator is not safe for concurrent use. Start, Stop and Pending must be
// called with mu (the locker given to NewGenerator) held; scheduled callbacks
// acquire mu themselves.
type Generator struct {
	cfg       Config
	templates []catalog.Template
	rng       Source
	board     Board
	timers    *timer.Group
	running   bool
}

func NewGenerator(
	cfg Config,
	templates []catalog.Template,
	rng Source,
	board Board,
	clock timer.Clock,
	mu sync.Locker,
) *Generator {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.DisplayDuration <= 0 {
		cfg.DisplayDuration = DefaultDisplayDuration
	}

	return &Generator{
		cfg:       cfg,
		templates: templates,
		rng:       rng,
		board:     board,
		timers:    timer.NewGroup(clock, mu),
	}
}

// Start schedules the first tick. Calling Start on a running generator does
// nothing.
func (g *Generator) Start() {
	if g.running {
		return
	}
	g.running = true
	g.scheduleTick()
}

// Stop cancels the repeating tick and every pending expiry, and returns the
// number of callbacks it revoked.
func (g *Generator) Stop() int {
	g.running = false
	return g.timers.StopAll()
}

func (g *Generator) Running() bool {
	return g.running
}

// Pending returns the number of outstanding callbacks, tick included.
func (g *Generator) Pending() int {
	return g.timers.Len()
}

func (g *Generator) scheduleTick() {
	g.timers.After(g.cfg.Period, g.tick)
}

func (g *Generator) tick() {
	if !g.running {
		return
	}
	g.scheduleTick()

	if len(g.templates) == 0 {
		return
	}

	tmpl := g.templates[g.rng.IntN(len(g.templates))]
	n := g.board.Post(tmpl)

	g.timers.After(g.cfg.DisplayDuration, func() {
		g.board.Retire(n.ID)
	})
}
