// Package memocache decorates computations with compute-once, reuse-forever
// file caching: results are persisted as gzip-compressed JSON keyed by a
// derived cache name, and every later call with the same name returns the
// stored value without re-running the computation.
//
// # Basic Usage
//
//	buildReport := func(ctx context.Context, args ...any) (Report, error) {
//		return expensiveReport(ctx)
//	}
//
//	report := memocache.Wrap("monthly_report", buildReport,
//		memocache.WithDir("/var/cache/reports"),
//	)
//
//	r, err := report(ctx)        // computes and writes monthly_report.cache.gz
//	r, err = report(ctx)         // served from disk, buildReport not called
//
// Without a directory the wrapper is a transparent pass-through:
//
//	report := memocache.Wrap("monthly_report", buildReport)
//	r, err := report(ctx)        // no caching, buildReport runs every time
//
// # Configuration Precedence
//
// Each option resolves independently, in order:
//
//  1. the value fixed at wrap time (WithDir, WithComment, WithAutodetect)
//  2. for the directory only, the call's first argument when it implements
//     DirProvider
//  3. the call-time override attached with WithCallConfig
//
// # Cache Names
//
// The entry name is the computation name plus an optional comment, with
// punctuation stripped from both ends. WithAutodetect additionally folds
// string, integer, and float argument values into the name so distinct
// inputs get distinct entries; boolean arguments are intentionally ignored.
//
// # Caveats
//
// There is no eviction, expiry, or invalidation: a second call with the
// same derived name returns the stored value even if the computation would
// now produce something different. The design assumes one writer per cache
// name at a time; writes are atomic (temp file plus rename) but concurrent
// callers racing on one name may compute the value more than once.
package memocache
