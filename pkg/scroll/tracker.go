package scroll

// Viewport is the observable state of a horizontally scrolling list.
// The zero value means nothing has been laid out yet.
type Viewport struct {
	FirstVisibleIndex int
	VisibleIndices    []int
}

// LastVisibleIndex returns the index of the last visible item. Before the
// first layout no items are reported visible and it returns 0, so a list
// with more than one item starts out scrollable forward.
func (v Viewport) LastVisibleIndex() int {
	if len(v.VisibleIndices) == 0 {
		return 0
	}
	return v.VisibleIndices[len(v.VisibleIndices)-1]
}

// Signals tells the presentation layer which edge indicators to show.
type Signals struct {
	CanScrollBackward bool
	CanScrollForward  bool
}

func CanScrollBackward(v Viewport) bool {
	return v.FirstVisibleIndex > 0
}

func CanScrollForward(v Viewport, itemCount int) bool {
	return v.LastVisibleIndex() < itemCount-1
}

// Compute derives both signals for a list of itemCount items.
func Compute(v Viewport, itemCount int) Signals {
	return Signals{
		CanScrollBackward: CanScrollBackward(v),
		CanScrollForward:  CanScrollForward(v, itemCount),
	}
}

// Listener is notified with the new signals after they change.
type Listener func(Signals)

// Tracker keeps the signals of one rendered collection current. It is owned
// by a single renderer and is not safe for concurrent use.
type Tracker struct {
	itemCount int
	viewport  Viewport
	signals   Signals
	listeners []Listener
}

func NewTracker(itemCount int) *Tracker {
	t := &Tracker{itemCount: itemCount}
	t.signals = Compute(t.viewport, itemCount)
	return t
}

func (t *Tracker) Signals() Signals {
	return t.signals
}

func (t *Tracker) Viewport() Viewport {
	return t.viewport
}

func (t *Tracker) ItemCount() int {
	return t.itemCount
}

// OnChange registers fn to run whenever the signals change.
func (t *Tracker) OnChange(fn Listener) {
	t.listeners = append(t.listeners, fn)
}

// SetViewport records a viewport change and reports whether the signals changed.
func (t *Tracker) SetViewport(v Viewport) bool {
	visible := make([]int, len(v.VisibleIndices))
	copy(visible, v.VisibleIndices)
	t.viewport = Viewport{FirstVisibleIndex: v.FirstVisibleIndex, VisibleIndices: visible}
	return t.recompute()
}

// SetItemCount records a new item count and reports whether the signals changed.
func (t *Tracker) SetItemCount(n int) bool {
	t.itemCount = n
	return t.recompute()
}

func (t *Tracker) recompute() bool {
	next := Compute(t.viewport, t.itemCount)
	if next == t.signals {
		return false
	}
	t.signals = next
	for _, fn := range t.listeners {
		fn(next)
	}
	return true
}
