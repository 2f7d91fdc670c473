// Package writer merges accumulated bundle data into output files.
//
// Three strategies implement Writer:
//   - JSONWriter sets the mapping and bundles objects at two document paths,
//     keeping the rest of the document intact
//   - TextWriter in script mode replaces two marker tokens in a JS file, or
//     appends a module loader config call when the file is empty
//   - TextWriter in markup mode does the same for HTML, wrapping the call in a
//     script element
//
// Every strategy performs a single read-modify-write of one file. Writes go
// through a temporary file in the target directory followed by a rename.
// Nothing guards against another process writing the same file concurrently.
package writer
