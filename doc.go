// Package plot provides an interactive 2D plotting surface for Go.
//
// # Overview
//
// plot renders axes, grids, data series (line and scatter graphs, bars,
// statistical boxes), legends and positionable items onto an abstract
// drawing canvas, and translates mouse input into range dragging, zooming
// and element selection. It is a sister library of github.com/gogpu/gg,
// which supplies the default canvas backend (see the ggcanvas subpackage).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plot"
//	    "github.com/gogpu/plot/ggcanvas"
//	)
//
//	p := plot.New(plot.WithCanvas(ggcanvas.New(640, 480)))
//	g := p.AddGraph(nil, nil)
//	g.SetDataKeyValue([]float64{1, 2, 3, 4}, []float64{0.5, 1.2, 0.9, 2.4})
//	g.RescaleAxes(false)
//	p.Replot()
//
// # Architecture
//
// The library is organized around three tightly coupled subsystems:
//
//   - Axis engine: Range validation, linear/logarithmic coordinate
//     transforms, automatic tick and sub-tick generation, label layout
//     and margin calculation.
//   - Layer system: every visible element is a Layerable registered on
//     exactly one Layer; drawing order is layer order, then insertion
//     order within a layer.
//   - Anchor graph: items are placed through Positions that resolve to
//     pixel points absolutely, as viewport or axis-rect ratios, as plot
//     coordinates through two axes, or relative to a parent anchor.
//
// The Plot type orchestrates all of the above: it owns the axes, the
// plottables, the items, the legend and the layers, and drives the
// synchronous replot pipeline (layout, tick regeneration, layered draw).
//
// # Canvas
//
// plot holds no knowledge of how pixels are produced. All drawing goes
// through the Canvas interface, a small capability set (stroke lines and
// shapes, draw and measure text, toggle antialiasing, clip). The ggcanvas
// subpackage adapts a gg drawing context; any other backend can be plugged
// in by implementing Canvas.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates for pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Plot coordinates are defined per axis by its Range; vertical axes invert
// the pixel direction so that plot values grow upward.
//
// # Threading
//
// A Plot is single-threaded by design: all mutation and drawing happen on
// one logical goroutine, driven by input events or explicit Replot calls.
package plot
