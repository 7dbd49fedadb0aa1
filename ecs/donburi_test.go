package ecs

import (
	"testing"

	"github.com/phanxgames/sttt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitTransition(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []sttt.Transition
	TransitionEventType.Subscribe(world, func(w donburi.World, e sttt.Transition) {
		received = append(received, e)
	})

	sink.EmitTransition(sttt.Transition{
		Kind:  sttt.CellEntered,
		Cell:  sttt.CellRef{X: 2, Y: 1, BoardID: 7},
		Board: sttt.BoardRef{ID: 7},
	})
	sink.EmitTransition(sttt.Transition{Kind: sttt.BoardActivated, Board: sttt.BoardRef{ID: 10}})

	// Events are queued until processed.
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != sttt.CellEntered || received[0].Cell != (sttt.CellRef{X: 2, Y: 1, BoardID: 7}) {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != sttt.BoardActivated || received[1].Board.ID != 10 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink sttt.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_BoardNavigationOrder(t *testing.T) {
	world := donburi.NewWorld()
	board, err := sttt.NewBoardFromConfig(sttt.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	board.SetEventSink(NewDonburiSink(world))

	var kinds []sttt.TransitionKind
	TransitionEventType.Subscribe(world, func(w donburi.World, e sttt.Transition) {
		kinds = append(kinds, e.Kind)
	})

	cell, ok := board.Registry().Cell(sttt.CellRef{X: 2, Y: 1, BoardID: board.Active()})
	if !ok {
		t.Fatal("cell (2, 1) of the active board not in registry")
	}
	p := cell.Bounds.Center()
	board.Update(sttt.Input{X: p.X, Y: p.Y, Pressed: true})
	events.ProcessAllEvents(world)

	want := []sttt.TransitionKind{
		sttt.CellEntered, sttt.BoardEntered, sttt.BoardDeactivated, sttt.BoardActivated,
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}
