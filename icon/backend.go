//go:build !noimaging

package icon

func backend() error {
	return nil
}
