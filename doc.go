// Package scatter reduces huge 2-D point datasets to the subset that would
// actually be visible in a fixed-resolution scatter plot, without rendering
// anything.
//
// # Overview
//
// The package simulates a pixel framebuffer: every point occupies a disk of
// pixels, later points (by index) draw over earlier ones, and only the
// indices that survive in the final buffer are kept. For a fixed grid the
// result can never exceed one index per pixel, so hundreds of millions of
// input points collapse to at most NX*NY retained points.
//
// # Quick Start
//
//	import scatter "github.com/otvam/scatter-simplify-go"
//
//	axis := scatter.Axis{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
//	grid := scatter.Grid{NX: 800, NY: 600}
//
//	// Keep only the points visible with a 2.5 px marker radius.
//	retained, err := scatter.Simplify(points, axis, grid, 2.5)
//
// The caller renders only the points named by the returned indices; any
// per-point attributes (color, size) are carried by index on the caller's
// side and never inspected here.
//
// # Algorithm
//
// Simplify runs a strict linear pipeline: validate configuration, build the
// disk mask once, then rasterize the points in bounded-size chunks into a
// shared index buffer, and finally extract the distinct surviving indices.
// Chunking bounds peak memory to O(chunk size) scratch plus the O(NX*NY)
// buffer, independent of the input size; the result is identical for every
// chunk size.
//
// # Coordinate System
//
// Data coordinates are mapped linearly from the axis range onto a 0-based
// pixel grid: u = (x - XMin) / (XMax - XMin), px = round((NX-1) * u), with
// round-half-away-from-zero (math.Round). Pixels are not clamped; mask
// offsets that land outside the grid are silently dropped, so points outside
// the axis range simply never contribute.
//
// # Concurrency
//
// Chunks are always applied sequentially (later chunks overwrite earlier
// ones). Within a chunk, WithWorkers enables banded parallelism: each worker
// owns a contiguous range of buffer rows, so the parallel result is
// bit-identical to the sequential one.
package scatter
