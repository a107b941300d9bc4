// Package convert moves documents between formats through the canonical
// document.
//
// Every conversion parses or decodes its input into an *ir.Document and
// then encodes that document. The pairwise converters are compositions
// of the primitives and nothing else, so for formats X and Y
//
//	XToY(v) == DocumentToY(XToDocument(v))
//
// holds byte for byte.
package convert
