// Package session owns the festival detail context: its active/inactive
// state, the visible bubble store, the ambient generator and every pending
// bubble timer. Callers interact only through the Controller's signals.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/ambient"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/store"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/timer"
)

const (
	DefaultPinAlertDelay = 2 * time.Second

	reasonEnter           = "enter"
	reasonLeave           = "leave"
	reasonFestivalChanged = "festival_changed"
	reasonNoFestival      = "no_festival"
)

type Config struct {
	AmbientPeriod   time.Duration
	DisplayDuration time.Duration
	PinAlertDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		AmbientPeriod:   ambient.DefaultPeriod,
		DisplayDuration: ambient.DefaultDisplayDuration,
		PinAlertDelay:   DefaultPinAlertDelay,
	}
}

// EventSink receives bubble lifecycle events. Emit is called with the
// controller lock held and must not block.
type EventSink interface {
	Emit(event domain.BubbleEvent)
}

type Option func(*Controller)

func WithClock(clock timer.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithRand(rng ambient.Source) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

func WithMetrics(m *metrics.BubbleMetrics) Option {
	return func(c *Controller) { c.bubbleMetrics = m }
}

func WithEventSink(sink EventSink) Option {
	return func(c *Controller) { c.events = sink }
}

// Controller is the festival detail context state machine. All signals and
// all timer callbacks run under one mutex, so each handler completes before
// the next one starts.
type Controller struct {
	catalog       *catalog.Catalog
	pins          domain.PinRepository
	clock         timer.Clock
	rng           ambient.Source
	cfg           Config
	bubbleMetrics *metrics.BubbleMetrics
	events        EventSink

	mu          sync.Mutex
	state       domain.ContextState
	store       *store.Store
	ids         domain.IDSequence
	generator   *ambient.Generator
	alerts      *timer.Group
	subscribers map[int]chan []domain.Notification
	nextSubID   int
}

func NewController(cat *catalog.Catalog, pins domain.PinRepository, opts ...Option) *Controller {
	c := &Controller{
		catalog:     cat,
		pins:        pins,
		clock:       timer.NewRealClock(),
		cfg:         DefaultConfig(),
		state:       domain.InactiveState(),
		store:       store.New(),
		subscribers: make(map[int]chan []domain.Notification),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if c.cfg.PinAlertDelay <= 0 {
		c.cfg.PinAlertDelay = DefaultPinAlertDelay
	}
	return c
}

// Enter activates the festival detail context. A nil festival is the same as
// Leave. Entering the festival that is already active does nothing; entering
// a different one tears the current activation down first.
func (c *Controller) Enter(ctx context.Context, festival *domain.Festival) {
	if festival == nil {
		c.leave(ctx, reasonNoFestival)
		return
	}

	ctx, span := tracing.StartTransitionSpan(ctx, reasonEnter, festival.ID)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.state.Phase.String()
	cancelled, cleared := 0, 0

	if c.state.IsActive() {
		if c.state.Festival.ID == festival.ID {
			slog.DebugContext(ctx, "festival already active",
				slog.Int("festival_id", festival.ID),
				slog.String("session_id", c.state.SessionID),
			)
			tracing.RecordTransitionResult(span, from, from, c.state.SessionID, 0, 0)
			return
		}
		cancelled, cleared = c.teardownLocked(ctx, reasonFestivalChanged)
	}

	f := *festival
	c.state = domain.ContextState{
		Phase:     domain.ContextActive,
		Festival:  &f,
		SessionID: uuid.NewString(),
	}
	c.alerts = timer.NewGroup(c.clock, &c.mu)
	c.generator = ambient.NewGenerator(
		ambient.Config{
			Period:          c.cfg.AmbientPeriod,
			DisplayDuration: c.cfg.DisplayDuration,
		},
		c.catalog.Ambient,
		c.rng,
		lockedBoard{c: c},
		c.clock,
		&c.mu,
	)
	c.generator.Start()

	if c.bubbleMetrics != nil {
		c.bubbleMetrics.RecordTransition(ctx, domain.ContextActive.String(), reasonEnter)
	}
	tracing.RecordTransitionResult(span, from, domain.ContextActive.String(), c.state.SessionID, cancelled, cleared)

	slog.InfoContext(ctx, "festival detail context entered",
		slog.String("event", "session.enter"),
		slog.Int("festival_id", festival.ID),
		slog.String("festival", festival.Name),
		slog.String("session_id", c.state.SessionID),
	)
}

// Leave deactivates the context: the generator and every pending pin alert
// are cancelled and the store is cleared, whatever state the context was in.
func (c *Controller) Leave(ctx context.Context) {
	c.leave(ctx, reasonLeave)
}

func (c *Controller) leave(ctx context.Context, reason string) {
	festivalID := 0

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Festival != nil {
		festivalID = c.state.Festival.ID
	}

	ctx, span := tracing.StartTransitionSpan(ctx, reason, festivalID)
	defer span.End()

	from := c.state.Phase.String()
	sessionID := c.state.SessionID
	cancelled, cleared := c.teardownLocked(ctx, reason)

	tracing.RecordTransitionResult(span, from, domain.ContextInactive.String(), sessionID, cancelled, cleared)

	if from == domain.ContextActive.String() {
		slog.InfoContext(ctx, "festival detail context left",
			slog.String("event", "session.leave"),
			slog.String("reason", reason),
			slog.Int("festival_id", festivalID),
			slog.String("session_id", sessionID),
			slog.Int("cancelled_timers", cancelled),
			slog.Int("cleared_bubbles", cleared),
		)
	}
}

// teardownLocked revokes every outstanding timer of the current activation,
// clears the store and marks the context inactive. It returns the number of
// revoked timers and removed bubbles.
func (c *Controller) teardownLocked(ctx context.Context, reason string) (int, int) {
	wasActive := c.state.IsActive()
	sessionID := c.state.SessionID
	festivalID := 0
	if c.state.Festival != nil {
		festivalID = c.state.Festival.ID
	}

	cancelled := 0
	if c.generator != nil {
		cancelled += c.generator.Stop()
		c.generator = nil
	}
	if c.alerts != nil {
		cancelled += c.alerts.StopAll()
		c.alerts = nil
	}

	removed := c.store.Clear()
	c.state = domain.InactiveState()

	now := c.clock.Now()
	for _, n := range removed {
		c.emitLocked(domain.BubbleEvent{
			SessionID:      sessionID,
			FestivalID:     festivalID,
			Kind:           domain.BubbleEventCleared,
			NotificationID: n.ID,
			Category:       n.Category,
			OccurredAt:     now,
		})
	}

	if c.bubbleMetrics != nil {
		c.bubbleMetrics.RecordTimersCancelled(ctx, reason, cancelled)
		c.bubbleMetrics.RecordBubblesCleared(ctx, len(removed))
		if wasActive {
			c.bubbleMetrics.RecordTransition(ctx, domain.ContextInactive.String(), reason)
		}
	}

	if len(removed) > 0 {
		c.broadcastLocked()
	}

	return cancelled, len(removed)
}

// TogglePin flips the performer's pin and reports whether it is pinned
// afterwards. A newly pinned performer gets a reminder bubble after the pin
// alert delay, but only while the context is active; the reminder is revoked
// if the context is left before it fires.
func (c *Controller) TogglePin(ctx context.Context, performer domain.Performer) (bool, error) {
	ctx, span := tracing.StartPinToggleSpan(ctx, performer.ID)
	defer span.End()

	pinned, err := c.pins.Toggle(ctx, performer.ID)
	if err != nil {
		err = fmt.Errorf("toggle pin %d: %w", performer.ID, err)
		tracing.RecordPinToggleResult(span, false, false, err)
		return false, err
	}

	if c.bubbleMetrics != nil {
		c.bubbleMetrics.RecordPinToggle(ctx, pinned)
	}

	scheduled := false
	if pinned {
		scheduled = c.schedulePinAlert(ctx, performer)
	}
	tracing.RecordPinToggleResult(span, pinned, scheduled, nil)

	slog.InfoContext(ctx, "pin toggled",
		slog.Int("performer_id", performer.ID),
		slog.Bool("pinned", pinned),
		slog.Bool("alert_scheduled", scheduled),
	)

	return pinned, nil
}

func (c *Controller) schedulePinAlert(ctx context.Context, performer domain.Performer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsActive() {
		return false
	}

	tmpl := catalog.Template{
		Text:     c.catalog.PinAlertText(performer.Name),
		Category: c.catalog.PinAlert.Category,
		Icon:     c.catalog.PinAlert.Icon,
	}
	c.alerts.After(c.cfg.PinAlertDelay, func() {
		c.postLocked(tmpl)
	})

	slog.DebugContext(ctx, "pin alert scheduled",
		slog.Int("performer_id", performer.ID),
		slog.Duration("delay", c.cfg.PinAlertDelay),
		slog.String("session_id", c.state.SessionID),
	)
	return true
}

// QueryNearestFood posts the nearest-food bubble if the context is active and
// reports whether it did.
func (c *Controller) QueryNearestFood(ctx context.Context) bool {
	return c.postIfActive(ctx, c.catalog.Proximity.Food, "food")
}

// QueryNearestRestroom posts the nearest-restroom bubble if the context is
// active and reports whether it did.
func (c *Controller) QueryNearestRestroom(ctx context.Context) bool {
	return c.postIfActive(ctx, c.catalog.Proximity.Restroom, "restroom")
}

func (c *Controller) postIfActive(ctx context.Context, tmpl catalog.Template, query string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsActive() {
		slog.DebugContext(ctx, "proximity query ignored, context inactive",
			slog.String("query", query),
		)
		return false
	}

	n := c.postLocked(tmpl)
	slog.DebugContext(ctx, "proximity bubble posted",
		slog.String("query", query),
		slog.Int64("notification_id", n.ID),
	)
	return true
}

// CurrentNotifications returns the visible bubbles in insertion order.
func (c *Controller) CurrentNotifications() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot()
}

func (c *Controller) State() domain.ContextState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Festival != nil {
		f := *s.Festival
		s.Festival = &f
	}
	return s
}

func (c *Controller) Pinned(ctx context.Context) ([]int, error) {
	ids, err := c.pins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	return ids, nil
}

// IsPinned reports whether performerID is in the Pinned-Item Set.
func (c *Controller) IsPinned(ctx context.Context, performerID int) (bool, error) {
	pinned, err := c.pins.IsPinned(ctx, performerID)
	if err != nil {
		return false, fmt.Errorf("check pin %d: %w", performerID, err)
	}
	return pinned, nil
}

// PendingTimers returns the number of scheduled callbacks owned by the
// current activation: the ambient tick, bubble expiries and pin alerts.
func (c *Controller) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	if c.generator != nil {
		n += c.generator.Pending()
	}
	if c.alerts != nil {
		n += c.alerts.Len()
	}
	return n
}

// Subscribe returns a channel that receives the store contents after every
// mutation, starting with the current contents. Only the latest snapshot is
// kept for a slow reader. The returned func unsubscribes and closes the
// channel.
func (c *Controller) Subscribe() (<-chan []domain.Notification, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++

	ch := make(chan []domain.Notification, 1)
	ch <- c.store.Snapshot()
	c.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subscribers, id)
			close(ch)
		})
	}
}

func (c *Controller) broadcastLocked() {
	for _, ch := range c.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- c.store.Snapshot()
	}
}

func (c *Controller) postLocked(tmpl catalog.Template) domain.Notification {
	now := c.clock.Now()
	n := domain.NewNotification(c.ids.Next(now), tmpl.Text, tmpl.Category, tmpl.Icon, now)
	c.store.Append(n)

	c.emitLocked(c.eventLocked(domain.BubbleEventAppended, n, now))
	if c.bubbleMetrics != nil {
		c.bubbleMetrics.RecordBubbleAppended(context.Background(), n.Category.String())
	}
	slog.Debug("bubble appended",
		slog.Int64("notification_id", n.ID),
		slog.String("category", n.Category.String()),
		slog.String("session_id", c.state.SessionID),
	)

	c.broadcastLocked()
	return n
}

func (c *Controller) retireLocked(id int64) {
	var retired domain.Notification
	for _, n := range c.store.Snapshot() {
		if n.ID == id {
			retired = n
			break
		}
	}
	if !c.store.Remove(id) {
		return
	}

	c.emitLocked(c.eventLocked(domain.BubbleEventExpired, retired, c.clock.Now()))
	if c.bubbleMetrics != nil {
		c.bubbleMetrics.RecordBubbleExpired(context.Background(), retired.Category.String())
	}

	c.broadcastLocked()
}

func (c *Controller) eventLocked(kind domain.BubbleEventKind, n domain.Notification, at time.Time) domain.BubbleEvent {
	ev := domain.BubbleEvent{
		SessionID:      c.state.SessionID,
		Kind:           kind,
		NotificationID: n.ID,
		Category:       n.Category,
		OccurredAt:     at,
	}
	if c.state.Festival != nil {
		ev.FestivalID = c.state.Festival.ID
	}
	return ev
}

func (c *Controller) emitLocked(ev domain.BubbleEvent) {
	if c.events != nil {
		c.events.Emit(ev)
	}
}

// lockedBoard lets the generator post and retire bubbles from callbacks that
// already hold the controller lock.
type lockedBoard struct {
	c *Controller
}

func (b lockedBoard) Post(tmpl catalog.Template) domain.Notification {
	return b.c.postLocked(tmpl)
}

func (b lockedBoard) Retire(id int64) {
	b.c.retireLocked(id)
}
