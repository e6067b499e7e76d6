// Package pattern compiles filename templates such as "{y}{m}{D}_{t}.{e}"
// and renders them against a metadata record and the original filename.
//
// Placeholders come from a closed vocabulary (see Vocabulary). Anything
// outside braces is copied verbatim; "{{" and "}}" produce literal braces.
// A compiled Pattern is immutable and may be rendered from many goroutines.
package pattern
