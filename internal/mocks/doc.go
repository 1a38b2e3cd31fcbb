// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for every interface method. When a
// function field is nil the mock falls back to a simple in-memory default,
// so most tests only override the one behavior they care about:
//
//	users := mocks.NewMockUserStore()
//	users.CreateFn = func(ctx context.Context, u *domain.User) error {
//	    return store.ErrEmailExists
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked and add a compile-time interface assertion.
package mocks
