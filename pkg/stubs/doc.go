// Package stubs mirrors a tree of stub files into a host application and
// removes it again.
//
// The first directory level of the stub tree names a category (see package
// paths); everything below it is the sub path. Hidden files and directories
// are ignored, as are files whose category has no mapping.
//
// Removal is derived from the stub tree as it is now, not from a record of
// what was written earlier. Files from an older stub tree that were renamed
// or dropped since are not cleaned up.
package stubs
