// Package lexer tokenises the string segments of a quasi-literal template.
//
// A template arrives as n+1 raw segments with n interpolation holes between
// them. The lexer scans each segment with a sticky token pattern and emits an
// Element stream in which every gap between segments appears as a Hole marker,
// so a parser can match interpolated values as if they were atomic terminals.
package lexer
