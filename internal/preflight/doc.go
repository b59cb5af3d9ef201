// Package preflight provides readiness checks for the external encoder
// binaries and filesystem paths a transcoding run depends on. The CLI runs
// them before planning so a missing encoder or unwritable destination
// stops the run before any work is attempted.
package preflight
