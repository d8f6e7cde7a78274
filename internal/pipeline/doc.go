// Package pipeline turns raw text into an ordered set of scored units.
//
// A run sanitizes the whole input, segments it by the requested mode, then
// sanitizes each unit again and scores it. Units are independent: a unit whose
// scoring fails is reported as a failure and the rest of the run continues.
// Pipelines hold no mutable state and may serve concurrent runs.
package pipeline
