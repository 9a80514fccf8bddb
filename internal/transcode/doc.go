// Package transcode converts Google API resource fields between their wire
// JSON form and the richer in-memory form used by the gapi clients.
//
// Three field kinds need special handling on the wire:
//   - Timestamps travel as ISO-8601 strings (RFC 3339).
//   - 64-bit integers travel as decimal strings, since JSON numbers lose
//     precision past 2^53.
//   - Binary payloads travel as standard, padded base64 text.
//
// Google's protobuf Duration values (for example "86400s") are handled the
// same way.
//
// # Typed fields
//
// Generated resource structs use the field types of this package and get
// transcoding for free from encoding/json:
//
//	type File struct {
//		Size         *transcode.Int64 `json:"size,omitempty"`
//		ModifiedTime transcode.Time   `json:"modifiedTime,omitzero"`
//		Thumbnail    transcode.Bytes  `json:"image,omitempty"`
//	}
//
// Absent fields stay absent: integer and duration fields are pointers,
// timestamps use omitzero and byte fields use omitempty.
//
// # Loosely typed maps
//
// Some APIs return free-form JSON objects (device traits, command results).
// A Schema tags the transcodable fields of such an object so that Decode and
// Encode can convert a decoded map[string]any recursively.
//
// Every malformed value fails the whole conversion with an *Error.
package transcode
