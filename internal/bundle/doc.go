// Package bundle holds the data model shared by the mapper and its writers:
// bundle records produced by an upstream bundler, the accumulator they are
// collected into, and the markers that locate the accumulated data inside an
// output file.
//
// # Records
//
// A record describes one optimized bundle:
//
//	{"name": "common", "outFile": "build/common.min.js", "include": ["jquery", "lodash"]}
//
// Records can be decoded from a JSON array, a stream of JSON objects (JSON
// lines or simply concatenated), or YAML documents. See Decode.
//
// # Marker paths
//
// For the JSON format, markers are dotted document paths such as
// "appData.static.js.mapping". Each segment names an object key; empty
// segments and query characters ("*", "?", "#", "|", "@", "!", "\", ":")
// are rejected. See ParseDocPath.
package bundle
