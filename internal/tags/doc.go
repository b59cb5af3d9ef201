// Package tags provides consolidated audio tag lookup.
//
// The Reader interface hides how tag values are obtained; the shipped
// implementation shells out to ffprobe and merges container and audio
// stream tag maps. Tag reads never fail: unreadable files degrade to empty
// Tags and a warning, so naming templates fall back instead of aborting a
// run.
package tags
