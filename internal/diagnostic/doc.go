// Package diagnostic provides structured warnings and errors collected while
// validating configuration and merging bundle data into output files.
//
// Key capabilities:
//   - Missing marker warnings for script and markup outputs
//   - Configuration problems reported per target and field
//   - A combined error for callers that only care about failure
package diagnostic
