package errorutils

// Must returns the value passed in if there is no error, otherwise it panics.
// Meant for places where an error means the program (or test) is already
// broken beyond recovery.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
