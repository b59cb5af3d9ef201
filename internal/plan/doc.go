// Package plan builds the work-unit plan for a transcoding run: one unit
// per resolved source, each with a target path and a disposition deciding
// whether the executor runs it.
package plan
