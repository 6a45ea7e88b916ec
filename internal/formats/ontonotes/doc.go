// Package ontonotes decodes OntoNotes 4.0 named-entity files into name samples.
//
// A corpus file holds one or more documents. Each document starts with a line
// beginning with "<DOC" and ends with the line "</DOC>". Every line in between is
// one sentence of whitespace-separated tokens in which entities are marked with
// ENAMEX tags glued to the surrounding words:
//
//	<ENAMEX TYPE="PERSON">John Smith</ENAMEX> works here -LRB- mostly -RRB-
//
// decodes to the tokens [John Smith works here ( mostly )] with the span
// [0..2) person. Bracket escapes such as -LRB- are mapped back to punctuation.
//
// # Lossy fallbacks
//
// The markup is not always well formed. These cases are tolerated and logged at
// debug level rather than reported as errors:
//
//   - An ENAMEX opened while another is still open replaces it; the earlier
//     entity is dropped (last open wins). Nested entities are therefore lost.
//   - An entity still open at the end of a line is dropped.
//   - A close tag with no open entity is ignored.
//
// A TYPE attribute without a closing quote is corrupt input and fails the read.
package ontonotes
