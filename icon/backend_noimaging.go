//go:build noimaging

package icon

// backend reports that the binary was built without the imaging backend.
func backend() error {
	return ErrUnavailable
}
