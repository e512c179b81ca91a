// Package consistency sequences writes that span the topology and business
// stores.
//
// There is no distributed transaction. An operation is a Plan:
//
//	checks ──> primary ──> secondary 1 ──> secondary 2 ...
//
// Checks are reads that validate the request; the primary write establishes
// the business record. A failing check or primary aborts the plan and the
// error is returned. Secondary writes run only after the primary succeeded,
// in order, without retry or rollback. A failed secondary leaves a repairable
// inconsistency (for example a locker whose port counter was not incremented);
// it is logged with an operation id, counted, and never reported to the caller
// as a failure.
package consistency
