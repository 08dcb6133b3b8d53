// Package options provides the generic functional-option plumbing used by
// the exported constructors in this module.
package options

// Option configures a target of type T. Constructors collect options and
// run them through Apply; an option returning an error aborts construction.
type Option[T any] func(T) error

// NoError adapts a function that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
