// Package template implements the small placeholder grammar used to derive
// target file names from tag metadata.
//
// A template such as "<albumartist_or_artist>< - +album+>/<track+. ><title>"
// is expanded against a Resolver function; unresolved variables collapse
// their whole placeholder, including conditional prefix and suffix literals,
// to the empty string. The same grammar also drives ffmpeg option templates,
// where quality and bitrate knobs may be absent.
package template
