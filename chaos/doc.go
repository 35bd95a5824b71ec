// Package chaos holds the randomized mutations applied to a buffer.
//
// Every operation leaves the buffer and its caret consistent on return, and
// draws its randomness from a caller-supplied Rand so sessions and tests can
// pin the sequence.
package chaos
