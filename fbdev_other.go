//go:build !linux

package ltdc

import "errors"

// OpenFramebuffer maps a Linux framebuffer device. It is only supported on
// Linux.
func OpenFramebuffer(path string, w, h int) (Memory, error) {
	return nil, errors.New("ltdc: framebuffer devices are only supported on linux")
}
