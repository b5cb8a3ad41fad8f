package i

import "context"

// Locker serializes work on a key across every running instance.
type Locker interface {
	// Lock blocks until key is held and returns the function that releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
