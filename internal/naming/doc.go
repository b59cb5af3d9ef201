// Package naming turns naming templates into concrete target paths. It
// binds the template variable vocabulary to a source's tags, path, and
// positional context, and guarantees a usable target path for every
// source via fallback naming.
package naming
