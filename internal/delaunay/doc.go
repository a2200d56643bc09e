// Package delaunay triangulates planar point sets with the Bowyer–Watson
// algorithm.
//
// Points are inserted one at a time into a large bootstrap super-triangle:
//
//   - [Point]: anything exposing X and Y coordinates
//   - [Edge], [Triangle]: index tuples with unordered equality
//   - [Triangulator]: reusable state for repeated triangulation
//   - [Triangulate]: one-shot convenience wrapper
//
// # Ordering
//
// Real points are inserted in reverse index order and the triangle list is
// scanned back to front. Both choices, together with the inclusive
// circumcircle test, fix the output on co-circular inputs, so repeated runs
// over the same points return identical triangles.
//
// # Degenerate input
//
// Collinear triples are not guarded. When a returned triangle has no
// finite circumcircle the triangles are still returned, alongside a
// [*DegenerateError].
package delaunay
