// Package testutil provides helpers shared by pathvar tests.
//
// Key components:
//   - TestEnvironment: points every pathvar location (state, config,
//     sessions) at temp directories and pins the session id
//   - MockStore: a scope.Store that counts writes and can refuse them
//
// Each test gets its own environment; nothing is shared between tests.
package testutil
