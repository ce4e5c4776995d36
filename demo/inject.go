package demo

// Pointer is the pointer state for one step, in screen coordinates.
type Pointer struct {
	X, Y float32
	Down bool
}

// InjectPress queues a pointer press at (x, y). Each queued event replaces
// the real pointer for one step.
func (g *Game) InjectPress(x, y float32) {
	g.injectQueue = append(g.injectQueue, Pointer{X: x, Y: y, Down: true})
}

// InjectRelease queues a pointer release at (x, y).
func (g *Game) InjectRelease(x, y float32) {
	g.injectQueue = append(g.injectQueue, Pointer{X: x, Y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two steps.
func (g *Game) InjectClick(x, y float32) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// PendingInput reports whether injected events are still queued.
func (g *Game) PendingInput() bool {
	return len(g.injectQueue) > 0
}

// nextPointer pops one injected event, or returns host when the queue is
// empty.
func (g *Game) nextPointer(host Pointer) Pointer {
	if len(g.injectQueue) == 0 {
		return host
	}
	p := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return p
}
