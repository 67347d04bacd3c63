// Package names assigns a unique, backend-legal identifier to every
// object and union node in a reduced [typegraph.Graph].
//
// [CollectCandidates] traverses the graph and, for each object or union
// node, gathers the field names under which it is referenced (unwrapping
// Array/Optional wrappers to attribute the name to the innermost nameable
// node). [Assign] filters those candidates through a backend-supplied
// [Preference], then solves a maximum bipartite matching between nodes and
// candidate names using Kuhn's augmenting-path algorithm, so that as many
// nodes as possible receive a name no other node also holds. A node the
// matching cannot cover has no entry in the returned [Registry]; callers
// fall back to a synthesized name such as the one [FallbackName] produces.
package names
