// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; the _test.go suffix keeps
//     this surface out of production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// ExportedMinorExcluding exposes Dense.minorExcluding (no guards).
var ExportedMinorExcluding = (*Dense).minorExcluding

// PanicEpsilonInvalid_TestOnly exports the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a read-only copy of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns their snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PolicyOf_TestOnly returns the numeric policy carried by m.
func PolicyOf_TestOnly(m *Dense) OptionsSnapshot {
	return OptionsSnapshot{Eps: m.eps, ValidateNaNInf: m.validateNaNInf}
}
