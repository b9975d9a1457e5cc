// Package graphfile reads and writes graph documents: an adjacency matrix
// plus optional vertex-pair queries, serialized as YAML.
//
// Document layout:
//
//	sentinel: 9223372036854775807   # optional; cells equal to it are Unreachable
//	adjacency:
//	  - [0, 5, 9, ~]                 # ~ / null / inf also mean Unreachable
//	  - [~, 0, 1, ~]
//	  - [~, ~, 0, 2]
//	  - [~, 3, ~, 0]
//	queries:
//	  - {source: 1, target: 4}
//
// Vertices in queries are 1-based, as printed by minplus.Path. Decoding does
// not validate the graph itself (square shape, diagonal, signs); that is
// left to minplus.Build.
package graphfile
