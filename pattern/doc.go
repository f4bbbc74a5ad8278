// Package pattern reads and writes the persisted form of a layout: a JSON
// document carrying the layout spec, the grid size, and the mapping table as
// an ordered list of coordinate pairs.
//
// What:
//
//   - Save — serializes a spec plus its generated table.
//   - Load — deserializes and immediately re-validates through
//     layout.Ensure: a stored table that went stale (grid resized since
//     save, hand-edited file, corrupt entry) is regenerated from the spec,
//     never trusted blindly.
//
// The layout spec serializes as a flat tagged object with a "kind"
// discriminator, mirroring the sum type: only the fields of the active kind
// are present.
//
// Errors:
//
//   - ErrDecode: the document is not valid pattern JSON.
//   - ErrVersion: the document's version is unsupported.
//   - ErrUnknownKind / ErrUnknownUnit: an unrecognized discriminator tag.
//
// Configuration errors from the embedded spec surface as layout.ErrConfig
// wrapped sentinels from Load, exactly as layout.Generate would report them.
package pattern
