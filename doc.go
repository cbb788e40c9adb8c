// Package traitconv converts collectible records between a nested metadata
// document and a flat tabular row.
//
// A [Metadata] is a named object carrying a list of [Attribute] pairs. A
// [Collectible] is the same record with one column per trait. The recognized
// traits are fixed by the schema constants ([Traits]); their order is the
// emission order of attributes and the column order of the trait fields.
//
// # Mapping
//
// [ToMetadata] and [ToCollectible] are pure and total:
//
//	c == traitconv.ToCollectible(traitconv.ToMetadata(c)) // for every Collectible
//
// Going from Metadata to Collectible, the first attribute with a matching
// trait_type wins, unknown traits are dropped and missing traits become empty
// text. The reverse round-trip is therefore a normalizing projection.
//
// # Formats
//
// Metadata travels as [JSON] or [YAML]; collectibles travel as [CSV] with a
// header row:
//
//	name,description,edition,eye,decoration,arms,legs,body,chip
//
// Use [ParseInput] to turn a command-line selector into a format, and
// [Convert] to run a whole conversion:
//
//	err := traitconv.Convert(os.Stdin, os.Stdout, traitconv.ParseInput(flag))
//
// Convert holds the whole input in memory and sorts the output by edition
// with a stable sort, so records sharing an edition keep their input order.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInputDecode] — malformed input; the error is a [*DecodeError]
//   - [ErrOutputEncode] — the output writer failed
//   - [ErrConfig] — invalid [Convert] options
//   - [ErrUnsupportedFormat] — unknown format name
//   - [ErrMissingInterface] — items don't implement the interface a format needs
package traitconv
