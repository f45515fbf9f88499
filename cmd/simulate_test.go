package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunSimulationScenario(t *testing.T) {
	var out bytes.Buffer

	err := runSimulation(context.Background(), &out, simulateOptions{
		Seed:       1,
		FestivalID: 1,
		Duration:   30 * time.Second,
		Step:       time.Second,
		FoodAt:     disabledAt,
		RestroomAt: disabledAt,
		LeaveAt:    8*time.Second + time.Second,
	})
	if err != nil {
		t.Fatalf("runSimulation() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"> enter Desert Dreams Festival",
		"t=0s     notifications=0",
		"t=8s     notifications=1",
		"> leave",
		"t=9s     notifications=0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Nothing appears after leaving.
	after := got[strings.Index(got, "> leave"):]
	if strings.Contains(after, "notifications=1") {
		t.Errorf("bubbles appeared after leave:\n%s", got)
	}
}

func TestRunSimulationDeterministic(t *testing.T) {
	opts := simulateOptions{
		Seed:         2025,
		Duration:     60 * time.Second,
		Step:         time.Second,
		PinPerformer: 5,
		FoodAt:       3 * time.Second,
		RestroomAt:   disabledAt,
		LeaveAt:      disabledAt,
	}

	var a, b bytes.Buffer
	if err := runSimulation(context.Background(), &a, opts); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if err := runSimulation(context.Background(), &b, opts); err != nil {
		t.Fatalf("second run error = %v", err)
	}

	if a.String() != b.String() {
		t.Fatalf("same seed produced different output:\n%s\n---\n%s", a.String(), b.String())
	}
	if !strings.Contains(a.String(), "> enter Urban Beats Fest") {
		t.Errorf("expected nearest festival to be entered:\n%s", a.String())
	}
	if !strings.Contains(a.String(), "City Lights starts in 15 minutes!") {
		t.Errorf("expected pin alert for City Lights:\n%s", a.String())
	}
	if !strings.Contains(a.String(), "Pizza Paradise") {
		t.Errorf("expected food bubble:\n%s", a.String())
	}
}

func TestRunSimulationRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts simulateOptions
	}{
		{name: "zero step", opts: simulateOptions{FestivalID: 1, Duration: time.Second}},
		{name: "unknown festival", opts: simulateOptions{FestivalID: 9, Duration: time.Second, Step: time.Second}},
		{name: "unknown performer", opts: simulateOptions{FestivalID: 1, Duration: time.Second, Step: time.Second, PinPerformer: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.FoodAt, tt.opts.RestroomAt, tt.opts.LeaveAt = disabledAt, disabledAt, disabledAt
			var out bytes.Buffer
			if err := runSimulation(context.Background(), &out, tt.opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCrossed(t *testing.T) {
	tests := []struct {
		prev, now, at time.Duration
		want          bool
	}{
		{0, time.Second, disabledAt, false},
		{0, time.Second, 0, true},
		{time.Second, 2 * time.Second, 0, false},
		{time.Second, 2 * time.Second, 2 * time.Second, true},
		{time.Second, 2 * time.Second, 1500 * time.Millisecond, true},
		{time.Second, 2 * time.Second, time.Second, false},
	}

	for _, tt := range tests {
		if got := crossed(tt.prev, tt.now, tt.at); got != tt.want {
			t.Errorf("crossed(%v, %v, %v) = %v, want %v", tt.prev, tt.now, tt.at, got, tt.want)
		}
	}
}
