package sttt

// InjectMove queues a pointer sample at the given world coordinates with no
// button held. Each queued sample replaces the live input of one Update.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, Input{X: x, Y: y, Button: MouseButtonLeft})
}

// InjectPress queues a left-button press at the given world coordinates.
func (b *Board) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, Input{X: x, Y: y, Pressed: true, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at the given world coordinates.
func (b *Board) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, Input{X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (b *Board) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectPath queues moves from (fromX, fromY) to (toX, toY), linearly
// interpolated over the given number of ticks (minimum 2).
func (b *Board) InjectPath(fromX, fromY, toX, toY float64, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	for i := 0; i < ticks; i++ {
		t := float64(i) / float64(ticks-1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued samples.
func (b *Board) Pending() int {
	return len(b.injectQueue)
}

// popInjected pops one queued sample. Returns false if the queue is empty,
// in which case the live input is used.
func (b *Board) popInjected() (Input, bool) {
	if len(b.injectQueue) == 0 {
		return Input{}, false
	}
	in := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	return in, true
}
