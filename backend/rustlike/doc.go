// Package rustlike emits Rust-like structural types (struct/enum with
// serde derive attributes) for a reduced typegraph.Graph.
package rustlike
