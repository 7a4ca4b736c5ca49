// Package solo lifts ordinary synchronous call shapes into tri.Outcome
// values. It is the producer side of the library: plain inputs go in,
// three-way outcomes come out.
//
// Common usage:
// - Succeed/Omit/FailWith: lift plain values into a chosen variant
// - Validate: lift a validation function (invalid becomes Fail)
// - Try: lift a (T, error) call
// - Find: lift a (T, ok, error) lookup, where a miss becomes Absent
// - Tee: trigger side effects on value outcomes only
// - Finally: reduce an outcome to a concrete value via per-variant handlers
package solo
