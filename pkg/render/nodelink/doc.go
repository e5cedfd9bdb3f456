// Package nodelink renders descendant trees as Graphviz node-link diagrams.
//
// # Overview
//
// Every family unit becomes one box holding the descendant and, when the
// print policy allows it, the partner. Arrows run from a union to each of
// its children's units, top to bottom by generation.
//
// # Usage
//
// Convert a tree to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(tree, render.DefaultOptions(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [Renderer] wraps both steps for the "dot" and "svg" output formats.
//
// # Styling
//
// Divorced unions get a dashed outline, lone individuals a grey fill. With
// [Options.Detailed] the box also lists the email and address lines.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
