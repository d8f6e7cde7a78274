// Package qabbala computes Alphanumeric Qabbala (AQ) values.
//
// Digits 0-9 are worth their face value and the letters a-z are worth 10
// through 35 (a letter's alphabet position plus nine). A text's AQ value is
// the sum over its letters and digits after accent folding and lower-casing;
// every other character is ignored rather than counted as zero.
//
// The lookup table is built once at package initialization and never
// mutated, so Score and Value are safe for concurrent use.
package qabbala
