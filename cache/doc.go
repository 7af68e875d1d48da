// Package cache provides the building blocks for file-backed result
// memoization: cache-name derivation, storage and configuration contracts,
// and the load-or-compute protocol.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Store: persists opaque payloads addressed by filesystem path
//   - KeyNamer: derives the on-disk cache name for a computation
//
// The default Store writes gzip-compressed JSON files and the default
// KeyNamer implements the standard naming policy. Both are designed to work
// with the memocache decorator, which resolves configuration per call and
// drives LoadOrCompute.
//
// # Naming Policy
//
// A cache name is the computation's name, followed by an underscore and the
// comment when a comment is present, with ASCII punctuation stripped from
// both ends. The suffix ".cache.gz" and the directory join are the store's
// concern, so a computation named "__call__" with comment "2024" produces
//
//	{dir}/call_2024.cache.gz
//
// With autodetection enabled, DetectArgTokens folds simple-typed call
// arguments into the comment: string values first, then integers and
// floats. Boolean arguments are deliberately excluded; two calls differing
// only in a boolean share one entry. Names that grow past filesystem
// limits are truncated and suffixed with an xxhash digest of the full name.
//
// # Load-or-Compute Protocol
//
//	result, err := cache.LoadOrCompute(ctx, store, path, func(ctx context.Context) (Report, error) {
//		return buildReport(ctx)
//	})
//
// Presence of a correctly named file is the entire addressing scheme: a
// present entry is decoded and returned with no staleness check, an absent
// one triggers the fetch, and the fresh result is written atomically before
// being returned. A corrupt entry is logged and treated as a miss rather
// than surfacing a decode failure.
//
// # Error Handling
//
// Directory resolution failures surface as *DirectoryError and encoding
// failures as *EncodeError, both catchable by the host. Errors from the
// fetch function itself are never caught or altered by this layer.
//
// # See Also
//
// For the decorator that wires these pieces together per call, see the
// memocache package.
package cache
