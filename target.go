// Package mkicons generates the application icons of the web client.
package mkicons

import "path/filepath"

// Target is a single icon to be generated.
type Target struct {
	Name string
	Size int    // width and height in pixels
	Path string // slash separated, relative to the root
}

// Targets is the fixed set of icons written by the driver.
var Targets = []Target{
	{Name: "icon-192", Size: 192, Path: "client/public/icon-192.png"},
	{Name: "icon-512", Size: 512, Path: "client/public/icon-512.png"},
	{Name: "apple-touch-icon", Size: 180, Path: "client/public/apple-touch-icon.png"},
}

// PlaceholderPath is where the placeholder is written, if the imaging backend
// is not available.
const PlaceholderPath = "client/public/icon-192.png"

// Filename returns the target filename under the root directory.
func (t Target) Filename(root string) string {
	return filepath.Join(root, filepath.FromSlash(t.Path))
}
