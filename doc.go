// Package sttt tracks pointer hover and board selection for a super
// tic-tac-toe grid: an outer grid of inner tic-tac-toe boards.
//
// The package renders nothing. It hit-tests the pointer against a static,
// two-level hierarchy of regions (boards and their cells), turns changes into
// enter/exit transitions, keeps the single active board, moves it with
// wraparound when a cell of the active board is clicked, and flips the
// visibility of the highlight layers attached to each region. The view
// package draws those layers with [Ebitengine].
//
// # Quick start
//
//	board, err := sttt.NewBoardFromConfig(sttt.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	board.OnTransition(sttt.BoardActivated, func(t sttt.Transition) {
//		fmt.Println("now active:", t.Board.ID)
//	})
//	// once per tick, in world coordinates:
//	board.Update(sttt.Input{X: wx, Y: wy, Pressed: down, DT: 1.0 / 60})
//
// # Ticks
//
// Each [Board.Update] hit-tests the sample, diffs the result against the
// previous tick at the cell level and at the board level, and then, on a
// fresh left press over a cell of the active board, steps the active board
// one column and/or row toward the clicked cell's side of its board.
//
// Hover hand-offs enter the new region before exiting the old one.
// Activation changes deactivate the old board before activating the new one.
//
// # Layers
//
// Every region owns its layers. Cells and boards carry two hover layers, one
// per [Skin]; the skin used is [SkinActive] when the region's board is the
// active board when the transition is applied. Boards also carry a
// [RoleGameActive] border shown only while active. A region missing a layer
// it needs is a construction bug and panics.
//
// ECS integration (via [Donburi]) lives in sttt/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sttt
