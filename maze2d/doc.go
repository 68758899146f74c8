// Package maze2d is the reference domain for package search: a 2D grid
// of passable/blocked cells, parsed from a plain-text ASCII format
// ('.' open, '#' wall, 'S' start, 'G' goal), exposing search.Problem,
// search.Space, and search.Heuristic implementations.
//
// Loading mazes from PNG or LDtk assets, the renderer, and the CLI
// front-end are all out of scope here (and for the kernel) — this
// package only needs to demonstrate the Problem/Space/Heuristic
// obligations the kernel relies on, using small literal ASCII grids.
package maze2d
