// Package quiz decides which answers count as correct for a quiz word.
//
// Variants expands a Russian translation into the inflected forms a learner is
// likely to type, and Evaluate matches the learner's text against that set.
// Both are pure functions with no I/O.
package quiz
