// Package routes inserts and removes a marker-delimited block of route
// declarations in a single source file.
//
// The block is identified by its start marker line alone: if that line is
// present the block is considered installed. InsertBlock and RemoveBlock work
// on strings; Patcher adds the file I/O.
package routes
