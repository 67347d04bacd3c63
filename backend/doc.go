// Package backend defines the collaborator contract that target-language
// emitters implement, plus a small registry so cmd/jsoncodegen can resolve
// a --lang selector to a constructor without importing every emitter
// package directly from the root command.
//
// A Backend is a read-only consumer of a reduced typegraph.Graph and the
// names.Registry assigned to it under the backend's own names.Preference.
// It is intentionally thin: the interesting design lives in schema,
// typegraph, and names; emitters are mostly text assembly.
package backend
