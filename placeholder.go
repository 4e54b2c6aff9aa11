package mkicons

import "encoding/base64"

// placeholderPNG is a 1×1 PNG.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// Placeholder returns the decoded placeholder image file.
func Placeholder() ([]byte, error) {
	return base64.StdEncoding.DecodeString(placeholderPNG)
}
