// Package traced wraps tri.Outcome with provenance: a unique id and a UTC
// creation timestamp. Useful when outcomes cross logging or audit
// boundaries and individual results need to be told apart.
package traced
