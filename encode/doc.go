// Package encode renders ir trees as JSON text, compact by default or
// indented with EncodeFormatted. Formatted output puts each object
// entry on its own line with one tab per nesting level and keeps arrays
// on a single line; compact output contains no insignificant
// whitespace. The inverse of parse: for any tree,
// parse.Parse(encode output) reproduces the tree.
package encode
