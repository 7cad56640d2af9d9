//go:build !unix

package device

func cellPixels() (w, h int, ok bool) {
	return 0, 0, false
}
