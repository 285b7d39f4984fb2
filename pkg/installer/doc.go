// Package installer composes the stub synchronizer, the env patcher and the
// route patcher into the three operations exposed to users: install, update
// and uninstall.
//
// An Installer holds no state between calls. Every operation recomputes its
// work from the current stub tree and the current host files. Callers must
// not run two operations against the same host tree at the same time.
package installer
