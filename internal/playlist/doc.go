// Package playlist reads and writes PLS and M3U/M3U8 playlist files.
//
// The read side extracts ordered audio file references, decoding file://
// URIs; .m3u and .m3u8 share the same line grammar. The write side produces
// CRLF-terminated M3U files (UTF-8 or Latin-1) and PLS files with the
// conventional header, entry pairs, and trailer fields.
package playlist
