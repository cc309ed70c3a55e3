// Package render turns validation reports into text.
//
// Supported formats are a pterm tree for terminals, YAML, JSON and
// Markdown. All of them read the same Document, a mapping from validator
// name to its validation.Report, and order keys deterministically.
package render
