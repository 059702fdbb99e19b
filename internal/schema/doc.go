// Package schema provides line-oriented access to block-structured schema
// definition files.
//
// A document is kept as an ordered sequence of text lines. The scanner
// recognizes top-level declarations of the form "<keyword> <Name> {" and
// tracks brace depth textually, which is all the structure the extraction
// pipeline needs.
package schema
