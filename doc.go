// Package unityflow canonicalizes the engine's multi-document text
// serialization format so that semantically identical files render
// byte-identically, and builds the identity-aware operations a text
// VCS needs on top of that: normalize, diff, validate, three-way
// merge.
//
// The subpackages hold the machinery: token and parse turn raw text
// into the ir document model, normalize produces the canonical
// document, encode renders it, validate reports structural findings
// and libdiff computes line diffs. This package ties them together:
// Diff compares two texts (optionally canonicalizing first) and
// ThreeWayMerge reconciles base/ours/theirs by object identity.
//
// Every operation is a pure function over immutable inputs: no shared
// state, no I/O, fresh output trees on every call. Callers may process
// independent files in parallel with no coordination.
package unityflow
