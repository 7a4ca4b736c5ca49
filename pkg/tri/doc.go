// Package tri provides Outcome[T, E], a three-way result that keeps
// "succeeded with no data" apart from "failed".
//
// Core surface:
// - Value/Absent/Fail: construct the three variants
// - IsValue/IsAbsent/IsFailure (+And forms): variant tests
// - Option/ErrOption: project to the plain two-way Option
// - Map/MapOr/MapOrElse/MapOrDefault/MapFailure, Inspect: transforms
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/UnwrapOrDefault and the Failure
//   and Option flavored families: extraction with explicit absence policy
// - FromOption/FromPtr/FromResult: lift two-way shapes into an Outcome
// - Never/UnwrapNever: panic-free collapse when failure is unconstructable
//
// For helpers that lift ordinary (T, error) and lookup call shapes, see
// package solo; for outcomes stamped with provenance, see package traced.
package tri
