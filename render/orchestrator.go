package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	mode      ColorMode
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator; a nil screen renders to the buffer only
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		mode:      mode,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// Buffer exposes the composed frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Mode returns the active color mode
func (o *RenderOrchestrator) Mode() ColorMode {
	return o.mode
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	if o.screen != nil {
		o.buffer.Flush(o.screen, o.mode)
		o.screen.Show()
	}
}
