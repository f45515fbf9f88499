package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/session"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/timer"
)

var simulationEpoch = time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC)

const disabledAt = time.Duration(-1)

type simulateOptions struct {
	Seed         uint64
	FestivalID   int
	Duration     time.Duration
	Step         time.Duration
	PinPerformer int
	FoodAt       time.Duration
	RestroomAt   time.Duration
	LeaveAt      time.Duration
	CatalogPath  string
}

func newSimulateCommand() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the scheduler on a virtual clock and print the visible bubbles",
		Long: "simulate enters a festival on a virtual clock, optionally pins a performer and\n" +
			"issues proximity queries, and prints the notification set whenever it changes.\n" +
			"Runs with the same seed print the same output.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(logging.NewLogger(logging.Config{
				Service:     logging.ServiceInfo{Name: "bubble-scheduler", Version: Version},
				Environment: logging.EnvDev,
				Module:      logging.Module("simulate"),
				Level:       slog.LevelWarn,
				Writer:      cmd.ErrOrStderr(),
			}))
			return runSimulation(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&opts.Seed, "seed", 1, "seed of the ambient template picker")
	f.IntVar(&opts.FestivalID, "festival", 0, "festival id to enter (0 enters the nearest festival)")
	f.DurationVar(&opts.Duration, "duration", 30*time.Second, "virtual time to simulate")
	f.DurationVar(&opts.Step, "step", time.Second, "virtual clock resolution")
	f.IntVar(&opts.PinPerformer, "pin", 0, "performer id to pin right after entering")
	f.DurationVar(&opts.FoodAt, "food-at", disabledAt, "virtual time of a nearest-food query")
	f.DurationVar(&opts.RestroomAt, "restroom-at", disabledAt, "virtual time of a nearest-restroom query")
	f.DurationVar(&opts.LeaveAt, "leave-at", disabledAt, "virtual time of leaving the festival")
	f.StringVar(&opts.CatalogPath, "catalog", "", "catalog YAML file (embedded catalog when empty)")

	return cmd
}

func runSimulation(ctx context.Context, w io.Writer, opts simulateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", opts.Step)
	}

	cat, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	festival, err := pickFestival(cat, opts.FestivalID)
	if err != nil {
		return err
	}

	clock := timer.NewManualClock(simulationEpoch)
	controller := session.NewController(cat, repository.NewMemoryPinRepository(),
		session.WithClock(clock),
		session.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))),
	)

	p := &simulationPrinter{w: w}

	controller.Enter(ctx, &festival)
	p.action(0, "enter %s", festival.Name)

	if opts.PinPerformer > 0 {
		performer, err := cat.Performer(opts.PinPerformer)
		if err != nil {
			return err
		}
		if _, err := controller.TogglePin(ctx, performer); err != nil {
			return err
		}
		p.action(0, "pin %s", performer.Name)
	}

	p.snapshot(0, controller.CurrentNotifications())

	for elapsed := time.Duration(0); elapsed < opts.Duration; {
		prev := elapsed
		elapsed += opts.Step
		clock.Advance(opts.Step)

		if crossed(prev, elapsed, opts.FoodAt) {
			controller.QueryNearestFood(ctx)
			p.action(elapsed, "query nearest food")
		}
		if crossed(prev, elapsed, opts.RestroomAt) {
			controller.QueryNearestRestroom(ctx)
			p.action(elapsed, "query nearest restroom")
		}
		if crossed(prev, elapsed, opts.LeaveAt) {
			controller.Leave(ctx)
			p.action(elapsed, "leave")
		}

		p.snapshot(elapsed, controller.CurrentNotifications())
	}

	controller.Leave(ctx)
	return p.err
}

func pickFestival(cat *catalog.Catalog, id int) (domain.Festival, error) {
	if id == 0 {
		return cat.Nearest()
	}
	return cat.Festival(id)
}

// crossed reports whether at falls in (prev, now]. An action at zero fires on
// the first step.
func crossed(prev, now, at time.Duration) bool {
	if at < 0 {
		return false
	}
	if at == 0 {
		return prev == 0
	}
	return prev < at && at <= now
}

type simulationPrinter struct {
	w    io.Writer
	last []int64
	err  error
}

func (p *simulationPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *simulationPrinter) action(at time.Duration, format string, args ...any) {
	p.printf("t=%-6s > %s\n", at, fmt.Sprintf(format, args...))
}

// snapshot prints the notification set when it differs from the last one
// printed.
func (p *simulationPrinter) snapshot(at time.Duration, ns []domain.Notification) {
	ids := make([]int64, len(ns))
	for i, n := range ns {
		ids[i] = n.ID
	}
	if p.last != nil && equalIDs(p.last, ids) {
		return
	}
	p.last = ids

	p.printf("t=%-6s notifications=%d\n", at, len(ns))
	for _, n := range ns {
		p.printf("         [%s] %s\n", n.Category, n.Text)
	}
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
