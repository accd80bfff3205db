// Package polyfile reads polygon description files.
//
// Format: one polygon per line, vertices separated by ';', each vertex an
// integer pair "x,y". Surrounding whitespace is trimmed and blank lines are
// skipped. A line with a malformed or empty vertex (a doubled, leading or
// trailing ';') or with fewer than three vertices makes the whole file invalid; the error wraps ErrMalformed and names the line.
//
//	10,10;20,10;20,20;10,20
//	5,30;15,30;10,40
package polyfile
