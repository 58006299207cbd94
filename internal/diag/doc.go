// Package diag defines the finding model shared by every validator in the
// crash diagnostic: severities, stable finding codes grouped by category,
// and the append-only Bag that accumulates findings for one run.
//
// Insertion order inside the Bag is significant for report readability and
// is never reordered; a finding, once added, is never removed.
package diag
