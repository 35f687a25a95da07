// Package engine provides the turn-based simulation loop.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/flyin/internal/agents"
	"github.com/talgya/flyin/internal/routing"
	"github.com/talgya/flyin/internal/world"
)

// ErrTurnLimit is returned when MaxTurns elapse with drones still in transit.
var ErrTurnLimit = errors.New("turn limit reached")

// Engine drives a Simulation forward one turn at a time. Turns are logical
// steps; there is no clock.
type Engine struct {
	Turn     int // Turns processed so far
	MaxTurns int // 0 = run until every drone arrives

	Sink   Sink             // Receives each turn's movement log
	OnTurn func(TurnReport) // Called after every turn, including silent ones
	Logger *slog.Logger
}

// NewEngine creates an engine with no turn limit.
func NewEngine() *Engine {
	return &Engine{
		Logger: slog.Default(),
	}
}

// Run advances sim until no drones remain in transit and returns the number
// of turns elapsed. Turn restarts from zero on every call, so one Engine can
// drive several simulations in sequence.
func (e *Engine) Run(sim *Simulation) (int, error) {
	e.Turn = 0
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	if err := sim.Validate(); err != nil {
		return e.Turn, err
	}

	log.Debug("simulation started", "drones", sim.Total, "hubs", sim.Graph.HubCount())

	for {
		sim.collectArrivals()
		if sim.Done() {
			break
		}
		if e.MaxTurns > 0 && e.Turn >= e.MaxTurns {
			log.Warn("turn limit reached",
				"turn", e.Turn,
				"in_transit", len(sim.Drones),
			)
			return e.Turn, fmt.Errorf("%w after %d turns (%d drones in transit)",
				ErrTurnLimit, e.Turn, len(sim.Drones))
		}

		report := sim.Step(e.Turn + 1)
		e.Turn++

		log.Debug("turn",
			"turn", report.Turn,
			"in_transit", report.InTransit,
			"events", len(report.Events),
			"replans", report.Replans,
			"waits", report.Waits,
		)

		if len(report.Events) > 0 && e.Sink != nil {
			if err := e.Sink.WriteTurn(report.Turn, report.Events); err != nil {
				return e.Turn, fmt.Errorf("write turn %d: %w", report.Turn, err)
			}
		}
		if e.OnTurn != nil {
			e.OnTurn(report)
		}
	}

	sim.Stats.Turns = e.Turn
	log.Info("simulation finished",
		"turns", humanize.Comma(int64(e.Turn)),
		"drones", humanize.Comma(int64(sim.Total)),
		"moves", humanize.Comma(int64(sim.Stats.Moves)),
		"stationary", humanize.Comma(int64(sim.Stats.Stationary)),
		"replans", humanize.Comma(int64(sim.Stats.Replans)),
		"waits", humanize.Comma(int64(sim.Stats.Waits)),
	)
	return e.Turn, nil
}

// Run simulates drones over g with an unlimited turn budget, writing each
// turn's movement log to sink, and returns the elapsed turn count.
func Run(drones []*agents.Drone, g *world.Graph, router routing.Pathfinder, sink Sink) (int, error) {
	eng := NewEngine()
	eng.Sink = sink
	return eng.Run(NewSimulation(g, router, drones))
}
