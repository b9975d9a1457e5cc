// Package tropath computes all-pairs shortest paths on small weighted
// directed graphs by iterated min-plus ("tropical") matrix composition, and
// reconstructs an explicit vertex path for any pair.
//
// What is inside?
//
//	• matrix/    — Weight (finite | Unreachable) with overflow-free addition,
//	               Dense weight matrices, validators, reference Floyd–Warshall,
//	               random digraph generator
//	• minplus/   — Combine (min-plus product with argmin), Build (per-step
//	               distance table), ShortestPath / Query (path unwinding)
//	• graphfile/ — YAML graph documents: adjacency matrix + vertex-pair queries
//	• cmd/tropath — CLI: demo, path, table, random
//
// Quick example, the four-vertex digraph
//
//	1 ──5──▶ 2 ──1──▶ 3 ──2──▶ 4
//	│        ▲                 │
//	└───9────┼───────▶ 3       │
//	         └────────3────────┘
//
// answers the query 1 → 4 with "1->2->3->4= 8".
//
// The engine performs n−2 compositions of O(n³) each, O(n⁴) overall: an
// explicit trade of speed for a table that exposes the best distance for
// every edge budget. Use it for small graphs; for large ones prefer
// matrix.FloydWarshall.
//
//	go get github.com/katalvlaran/tropath
package tropath
