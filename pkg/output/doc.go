// Package output renders pathvar results for people and for programs.
//
// Lists render in one of several formats:
//
//   - text:  one entry per line, nothing else (good for pipes)
//   - term:  numbered, styled entries with lipgloss; empty and repeated
//     entries are flagged
//   - json:  {"variable": ..., "separator": ..., "entries": [...]}
//   - yaml:  the same document as yaml
//   - table: an index/entry table
//
// FormatAuto resolves to term on color-capable terminals and to text
// otherwise, honoring NO_COLOR.
package output
