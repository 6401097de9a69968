// Package raycast implements the visibility core: line-segment obstacles, rays,
// the segment/ray intersector, the emitter that owns a fan of rays and reduces
// each ray to its nearest hit, and a fixed-capacity trail of past positions.
//
// Everything here is plain data in, plain data out. Nothing draws, logs or
// performs I/O, and obstacle slices are only read for the duration of a call.
package raycast
