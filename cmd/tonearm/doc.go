// Command tonearm transcodes audio collections into a cleanly named
// destination tree. Inputs can be audio files, directories, or M3U/PLS
// playlists; target names come from tag-backed naming templates.
package main
