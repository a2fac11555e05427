// Package direction extracts the orientation of two-qubit gates from a
// device snapshot.
//
// For every gate acting on more than one qubit, in snapshot order, it reports
// the gate name and a binary flag: 0 when the first qubit index is greater
// than the second, 1 otherwise. The flag tells which coupled qubit is the
// designated control.
//
// Results can be persisted as a two-line text artifact (directions.txt by
// default):
//
//	['cx0_1', 'cx2_1']
//	[1, 0]
//
// Persistence failures are returned to the caller, never swallowed.
package direction
