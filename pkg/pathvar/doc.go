// Package pathvar implements the pathvar mutation engine.
//
// An Engine edits one path-list variable per call: it resolves the
// variable name, validates the path argument, reads the current value from
// its scope.Store, computes the new value with package pathlist and writes
// it back. Every check runs before the write, so a failed call leaves the
// scope untouched.
//
//	store := scope.FromEnviron(os.Environ())
//	engine := pathvar.New(store)
//	if err := engine.Append(pathvar.Request{Path: pathvar.PathArg("/opt/bin")}); err != nil {
//		return err
//	}
//
// Appending never deduplicates: appending an entry that is already present
// produces a second occurrence. Use Dedupe to collapse repeats.
//
// Read-modify-write cycles are serialized per variable name, through the
// store when it implements scope.Locker and through the engine otherwise.
package pathvar
