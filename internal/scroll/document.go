package scroll

// Observer delivers scroll progress updates. Subscribe returns a function
// that removes the callback; calling it more than once is harmless.
type Observer interface {
	Subscribe(fn func(progress float64)) (unsubscribe func())
}

// Document is a virtual page that is taller than the window showing it.
// Progress runs from 0 when the top of the page meets the top of the
// viewport to 1 when the bottom of the page meets the bottom of the viewport.
type Document struct {
	height   float64
	viewport float64
	offset   float64

	nextID      int
	subscribers map[int]func(float64)
}

// NewDocument creates a page of the given height shown through a viewport.
func NewDocument(height, viewport float64) *Document {
	d := &Document{
		height:      height,
		viewport:    viewport,
		subscribers: make(map[int]func(float64)),
	}
	d.offset = d.clampOffset(0)
	return d
}

// Subscribe registers fn and immediately calls it with the current progress.
func (d *Document) Subscribe(fn func(progress float64)) func() {
	id := d.nextID
	d.nextID++
	d.subscribers[id] = fn
	fn(d.Progress())

	return func() {
		delete(d.subscribers, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (d *Document) Subscribers() int {
	return len(d.subscribers)
}

// Progress returns offset / scrollable range, or 0 if the page fits the viewport.
func (d *Document) Progress() float64 {
	span := d.scrollable()
	if span <= 0 {
		return 0
	}
	return Clamp(d.offset / span)
}

// Offset returns the current scroll offset in pixels.
func (d *Document) Offset() float64 {
	return d.offset
}

// ScrollBy moves the viewport by delta pixels (positive scrolls down).
func (d *Document) ScrollBy(delta float64) {
	d.ScrollTo(d.offset + delta)
}

// ScrollTo moves the viewport to an absolute offset.
func (d *Document) ScrollTo(offset float64) {
	d.offset = d.clampOffset(offset)
	d.notify()
}

// PageDown scrolls by one viewport minus a small overlap.
func (d *Document) PageDown() {
	d.ScrollBy(d.pageStep())
}

// PageUp scrolls back by one viewport minus a small overlap.
func (d *Document) PageUp() {
	d.ScrollBy(-d.pageStep())
}

// Home jumps to the top of the page.
func (d *Document) Home() {
	d.ScrollTo(0)
}

// End jumps to the bottom of the page.
func (d *Document) End() {
	d.ScrollTo(d.scrollable())
}

// Resize changes the viewport and page heights, keeping the offset in range.
// A page height of 0 keeps the current one.
func (d *Document) Resize(height, viewport float64) {
	if height > 0 {
		d.height = height
	}
	d.viewport = viewport
	d.offset = d.clampOffset(d.offset)
	d.notify()
}

func (d *Document) pageStep() float64 {
	return d.viewport * 0.9
}

func (d *Document) scrollable() float64 {
	return d.height - d.viewport
}

func (d *Document) clampOffset(offset float64) float64 {
	span := d.scrollable()
	if offset < 0 || span <= 0 {
		return 0
	}
	if offset > span {
		return span
	}
	return offset
}

func (d *Document) notify() {
	p := d.Progress()
	for _, fn := range d.subscribers {
		fn(p)
	}
}
