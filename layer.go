package plot

import "slices"

// AntialiasedElements is a bit set of element categories used for the
// plot-wide antialiasing overrides, see Plot.SetAntialiasedElements and
// Plot.SetNotAntialiasedElements.
type AntialiasedElements uint32

// Element categories for antialiasing overrides.
const (
	AEAxes AntialiasedElements = 1 << iota
	AEGrid
	AESubGrid
	AELegend
	AELegendItems
	AEPlottables
	AEItems
	AEScatters
	AEErrorBars
	AEFills
	AEZeroLine

	// AENone selects no element category.
	AENone AntialiasedElements = 0
	// AEAll selects every element category.
	AEAll AntialiasedElements = 0xffffffff
)

// Layerable is implemented by every drawable element that participates in
// the ordered rendering system: axes, grids, plottables, items and the
// legend. Concrete layerables embed LayerableBase and register themselves
// with their plot, which assigns them to a layer.
type Layerable interface {
	// Visible reports whether the element is drawn at all.
	Visible() bool
	// Layer returns the layer the element currently belongs to.
	Layer() *Layer
	// ClipRect returns the pixel rectangle drawing is clipped to.
	ClipRect() Rect
	// ApplyDefaultAntialiasingHint sets the canvas antialiasing state the
	// element wants for its main drawing operations, honoring the
	// plot-wide overrides.
	ApplyDefaultAntialiasingHint(c Canvas)
	// Draw paints the element onto the canvas.
	Draw(c Canvas)

	// base exposes the embedded LayerableBase for layer bookkeeping.
	base() *LayerableBase
}

// LayerableBase carries the state shared by all layerables: visibility,
// layer membership, the local antialiasing flag and the back-reference to
// the owning plot. Embed it and call initLayerable before use.
type LayerableBase struct {
	self        Layerable
	plot        *Plot
	visible     bool
	layer       *Layer
	antialiased bool
}

// initLayerable wires the embedding element to its plot. self must be the
// embedding element itself so layers can store it.
func (lb *LayerableBase) initLayerable(self Layerable, p *Plot) {
	lb.self = self
	lb.plot = p
	lb.visible = true
	lb.antialiased = true
}

func (lb *LayerableBase) base() *LayerableBase { return lb }

// Visible reports whether the element is drawn.
func (lb *LayerableBase) Visible() bool { return lb.visible }

// SetVisible sets whether the element is drawn.
func (lb *LayerableBase) SetVisible(on bool) { lb.visible = on }

// Antialiased returns the local antialiasing flag. The plot-wide
// overrides take precedence over it.
func (lb *LayerableBase) Antialiased() bool { return lb.antialiased }

// SetAntialiased sets the local antialiasing flag.
func (lb *LayerableBase) SetAntialiased(on bool) { lb.antialiased = on }

// ParentPlot returns the plot the element belongs to.
func (lb *LayerableBase) ParentPlot() *Plot { return lb.plot }

// Layer returns the layer the element currently belongs to, or nil if it
// has not been assigned yet.
func (lb *LayerableBase) Layer() *Layer { return lb.layer }

// SetLayer moves the element to the given layer. The element is removed
// from its old layer's child list and appended to the new one. Returns
// false if layer belongs to a different plot.
func (lb *LayerableBase) SetLayer(layer *Layer) bool {
	return lb.moveToLayer(layer, false)
}

// SetLayerByName moves the element to the layer with the given name.
// Returns false if no such layer exists.
func (lb *LayerableBase) SetLayerByName(name string) bool {
	if lb.plot == nil {
		return false
	}
	layer := lb.plot.LayerByName(name)
	if layer == nil {
		Logger().Warn("plot: no layer with given name", "name", name)
		return false
	}
	return lb.SetLayer(layer)
}

// ClipRect returns the plot viewport. Elements that clip to the axis
// rect override this.
func (lb *LayerableBase) ClipRect() Rect {
	if lb.plot == nil {
		return Rect{}
	}
	return lb.plot.Viewport()
}

// moveToLayer detaches the element from its current layer and attaches
// it to layer, appending or prepending to the child list.
func (lb *LayerableBase) moveToLayer(layer *Layer, prepend bool) bool {
	if layer != nil && layer.plot != lb.plot {
		Logger().Warn("plot: layer belongs to a different plot", "layer", layer.Name())
		return false
	}
	if lb.layer != nil {
		lb.layer.removeChild(lb.self)
	}
	lb.layer = layer
	if layer != nil {
		layer.addChild(lb.self, prepend)
	}
	return true
}

// applyAntialiasingHint resolves the effective antialiasing state for one
// element category: the plot-wide force-off set wins over the force-on
// set, which wins over the local flag.
func (lb *LayerableBase) applyAntialiasingHint(c Canvas, localAntialiased bool, element AntialiasedElements) {
	switch {
	case lb.plot != nil && lb.plot.notAntialiasedElements&element != 0:
		c.SetAntialiasing(false)
	case lb.plot != nil && lb.plot.antialiasedElements&element != 0:
		c.SetAntialiasing(true)
	default:
		c.SetAntialiasing(localAntialiased)
	}
}

// Layer is a named, ordered group of layerables. The drawing order of a
// plot is its layer order, then each layer's child order. Layers never
// own their children; they only reference them.
type Layer struct {
	plot     *Plot
	name     string
	children []Layerable
}

func newLayer(p *Plot, name string) *Layer {
	return &Layer{plot: p, name: name}
}

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// Index returns the position of the layer in its plot's layer stack, or
// -1 if the layer is not registered.
func (l *Layer) Index() int {
	if l.plot == nil {
		return -1
	}
	return slices.Index(l.plot.layers, l)
}

// Children returns the layerables on this layer in drawing order.
// The returned slice must not be modified.
func (l *Layer) Children() []Layerable { return l.children }

func (l *Layer) addChild(child Layerable, prepend bool) {
	if slices.Contains(l.children, child) {
		Logger().Warn("plot: layerable already child of layer", "layer", l.name)
		return
	}
	if prepend {
		l.children = append([]Layerable{child}, l.children...)
	} else {
		l.children = append(l.children, child)
	}
}

func (l *Layer) removeChild(child Layerable) {
	i := slices.Index(l.children, child)
	if i < 0 {
		Logger().Warn("plot: layerable not child of layer", "layer", l.name)
		return
	}
	l.children = slices.Delete(l.children, i, i+1)
}

// LayerInsertMode defines where a layer is inserted relative to another.
type LayerInsertMode int

const (
	// LayerBelow inserts the new layer below the reference layer.
	LayerBelow LayerInsertMode = iota
	// LayerAbove inserts the new layer above the reference layer.
	LayerAbove
)

// LayerByName returns the layer with the given name, or nil.
func (p *Plot) LayerByName(name string) *Layer {
	for _, l := range p.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// LayerAt returns the layer at the given stack index, or nil.
func (p *Plot) LayerAt(index int) *Layer {
	if index < 0 || index >= len(p.layers) {
		return nil
	}
	return p.layers[index]
}

// LayerCount returns the number of layers.
func (p *Plot) LayerCount() int { return len(p.layers) }

// CurrentLayer returns the layer new layerables are placed on.
func (p *Plot) CurrentLayer() *Layer { return p.currentLayer }

// SetCurrentLayer makes the named layer the one new layerables are
// placed on. Returns false if no such layer exists.
func (p *Plot) SetCurrentLayer(name string) bool {
	layer := p.LayerByName(name)
	if layer == nil {
		Logger().Warn("plot: no layer with given name", "name", name)
		return false
	}
	p.currentLayer = layer
	return true
}

// AddLayer inserts a new empty layer with the given name above or below
// other. A nil other refers to the topmost layer. Returns false if the
// name is taken or other is not a layer of this plot.
func (p *Plot) AddLayer(name string, other *Layer, mode LayerInsertMode) bool {
	if other == nil {
		other = p.layers[len(p.layers)-1]
	}
	if !slices.Contains(p.layers, other) {
		Logger().Warn("plot: reference layer not part of plot", "layer", other.Name())
		return false
	}
	if p.LayerByName(name) != nil {
		Logger().Warn("plot: layer name already exists", "name", name)
		return false
	}
	index := other.Index()
	if mode == LayerAbove {
		index++
	}
	p.layers = slices.Insert(p.layers, index, newLayer(p, name))
	return true
}

// RemoveLayer removes the given layer. Its children are moved to the
// neighboring layer below (or above, for the bottom layer) so the total
// drawing order of the remaining layerables is preserved; nothing is
// deleted. The last layer cannot be removed. If the removed layer was
// the current layer, the neighbor becomes current.
func (p *Plot) RemoveLayer(layer *Layer) bool {
	index := layer.Index()
	if index < 0 || layer.plot != p {
		Logger().Warn("plot: layer not part of plot")
		return false
	}
	if len(p.layers) < 2 {
		Logger().Warn("plot: cannot remove last layer")
		return false
	}

	isBottom := index == 0
	var target *Layer
	if isBottom {
		target = p.layers[index+1]
	} else {
		target = p.layers[index-1]
	}
	children := slices.Clone(layer.children)
	if isBottom {
		// prepend in reverse order so relative order is preserved
		for i := len(children) - 1; i >= 0; i-- {
			children[i].base().moveToLayer(target, true)
		}
	} else {
		for _, child := range children {
			child.base().moveToLayer(target, false)
		}
	}
	if p.currentLayer == layer {
		p.currentLayer = target
	}
	p.layers = slices.Delete(p.layers, index, index+1)
	layer.plot = nil
	return true
}

// MoveLayer moves layer above or below other in the layer stack.
func (p *Plot) MoveLayer(layer, other *Layer, mode LayerInsertMode) bool {
	if layer.plot != p || layer.Index() < 0 {
		Logger().Warn("plot: layer not part of plot")
		return false
	}
	if other == nil {
		other = p.layers[len(p.layers)-1]
	}
	if other.plot != p || other.Index() < 0 {
		Logger().Warn("plot: reference layer not part of plot")
		return false
	}
	from := layer.Index()
	p.layers = slices.Delete(p.layers, from, from+1)
	to := other.Index()
	if mode == LayerAbove {
		to++
	}
	p.layers = slices.Insert(p.layers, to, layer)
	return true
}
