// Package envfile adds and removes a package-owned block of KEY=value
// defaults in dotenv style files.
//
// The block is a section comment ("# <Label>") followed by one assignment per
// key. AppendBlock and StripBlock are pure string functions; Patcher wraps
// them with file I/O.
//
// A file that does not exist is never created: EnsureKeys and RemoveKeys
// report it as Missing and return without error. Lines that contain '=' but
// do not parse as an assignment are reported as ambiguous and left alone.
package envfile
