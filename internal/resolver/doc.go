// Package resolver reads an ordered list of `.env*` layers and folds them
// into one mapping, later layers overwriting earlier ones, then optionally
// combines the result with the system environment.
//
// The package keeps no state between calls: every Resolve works only on its
// arguments and the files they name.
package resolver
