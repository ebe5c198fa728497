// Package rockfield turns rock outlines into the immutable set of blocked
// lattice cells that a sand simulation starts from.
//
// Outlines are polylines whose consecutive vertices share either x or y.
// Every cell on every segment, both endpoints included, becomes rock. The
// field also records Bottom, the depth of the lowest rock, which the
// simulation uses as its abyss threshold and to place the floor.
//
// Input text holds one polyline per line:
//
//	498,4 -> 498,6 -> 496,6
//	503,4 -> 502,4 -> 502,9 -> 494,9
package rockfield
