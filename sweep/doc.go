// Package sweep verifies nilpotent completions exhaustively.
//
// A sweep enumerates every admissible triple (n, r, λ) in a configured range
// of n, builds completion.Complete(n, r, λ), checks its shape and recovers
// its Jordan type with jordan.Type. Any mismatch is a failure. Independent
// (n, r) jobs run concurrently on a bounded errgroup; each run carries a
// UUID that tags its log lines and its Report.
//
// Configuration comes from DefaultConfig, optionally overlaid with a YAML
// file (LoadConfig). Logging uses zap; a nil logger is replaced by zap.NewNop.
package sweep
