// Package verbose emits a verbose class-based language: one class per
// named node, private fields with public getters/setters, and a single
// reflection-based serializer class shared by every emitted class.
package verbose
