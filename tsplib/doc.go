// Package tsplib reads TSPLIB-formatted inputs and turns them into
// ordering problems.
//
// Supported subset:
//
//   - .tsp instances with TYPE: TSP and EDGE_WEIGHT_TYPE: EUC_2D - a
//     key:value header, a NODE_COORD_SECTION of 1-indexed coordinate
//     lines, and an optional EOF trailer. Pair costs are Euclidean
//     distances rounded to the nearest integer (the TSPLIB EUC_2D rule).
//
//   - .tour files with TYPE: TOUR - a header, a TOUR_SECTION of 1-indexed
//     node lines, and an optional -1 terminator that closes the loop.
//     Tours are replayed through an order cycle engine edge by edge, so a
//     malformed tour (revisit, wrong length) fails structurally without
//     any dedicated validation pass.
//
// The package operates on io.Reader; opening files belongs to callers.
//
// Reference instances live at
// http://elib.zib.de/pub/mp-testdata/tsp/tsplib/tsp/index.html.
package tsplib
