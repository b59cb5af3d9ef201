// Package pathclean rewrites arbitrary strings, typically expanded naming
// templates, into filesystem-safe relative paths.
//
// It strips characters that are illegal on common filesystems, normalizes
// quote variants, collapses whitespace and separator runs, removes dot runs
// that could escape the destination root, and keeps path segments within
// typical filesystem name limits.
package pathclean
