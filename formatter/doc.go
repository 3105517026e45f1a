// Package formatter serializes GPX documents back to disk.
//
// This package is organized into:
// - xml.go: XML serialization with proper escaping and optional indentation
// - encoding.go: XML declaration and text-encoding stage (ASCII through UTF-32)
// - save.go: writing the encoded bytes to the destination path
//
// All serialization is done manually for precise control over output format:
// element order, indentation, the encoding named in the XML declaration and
// verbatim pass-through of <extensions> content.
package formatter
