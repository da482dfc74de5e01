// Package token provides the byte level pieces of the JSON grammar:
// string quoting and unquoting, number scanning, and byte offset to
// line/column position mapping. The parse and encode packages are built
// on top of it.
package token
