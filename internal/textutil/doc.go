// Package textutil provides the character-level text helpers shared by the
// scorer, the segmenter and the exporters.
//
// The primary use cases are:
//   - Folding accented and non-decomposable Latin text to a plain ASCII
//     approximation before it is scored (Fold)
//   - Stripping ASCII control characters that spreadsheet cells reject
//     (SanitizeCell)
//   - Sanitizing filenames for export artifacts written to disk
//
// Folding is only ever applied on the scoring path. Text shown to users or
// written to exports keeps its original characters.
package textutil
