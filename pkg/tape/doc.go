/*
Package tape implements the read/write memory of the simulated machines.

A Tape is a 0-indexed sequence over a three symbol alphabet (Zero, One, Blank).
Writes past the end grow the tape and pad the new cells with Blank. Reads never
grow it: reading a cell that was never written is a programming error and panics.
*/
package tape
