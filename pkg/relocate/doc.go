// Package relocate moves a pipeline configuration tree to a new location.
//
// A move runs through fixed phases:
//
//	Lookup → Confirming → Validating → Copying → RewritingMarker →
//	UpdatingMappings → UpdatingRegistry → CleaningUp → Done
//
// Any phase before CleaningUp can end the move in Failed. Validation has no
// side effects, so a preflight failure leaves everything untouched. A
// failure while copying, rewriting the marker or updating storage mappings
// leaves the source intact and possibly a partial tree at the destination;
// the returned error says so and nothing is rolled back automatically.
// Once the registry points at the new location the move has succeeded, and
// the cleanup of the old tree is best-effort: its problems are reported in
// the CleanupReport, never as an error.
//
// The process umask is cleared for the Copying and RewritingMarker phases
// and restored on every exit from them.
//
// The package does no locking. Running two moves against overlapping
// source or destination trees at the same time is unsupported.
package relocate
