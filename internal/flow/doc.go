// Package flow resolves the final set of environment variables for a
// directory: it picks the effective environment name, locates the existing
// `.env*` layers, merges them and optionally combines the result with the
// system environment.
//
// A call to [Load] is a pure function of its Options and the files on disk.
// The system environment is passed in as a snapshot, never read implicitly.
package flow
