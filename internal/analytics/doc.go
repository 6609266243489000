// internal/analytics/doc.go

// Package analytics filters, aggregates, sorts and pages transaction sequences.
//
// Every function consumes an iter.Seq[domain.Transaction] and makes a single
// pass over it. Nothing here holds state between calls; results belong to the
// caller.
package analytics
