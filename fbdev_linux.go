//go:build linux

package ltdc

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenFramebuffer maps a Linux framebuffer device such as /dev/fb0. The
// device must be configured for 16 bits per pixel with a virtual height of
// at least twice the visible height, so both layers fit. Framebuffer
// devices do not expose controller registers.
func OpenFramebuffer(path string, w, h int) (Memory, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("ltdc: %w", err)
	}

	size := len(Layers) * w * h * bytesPerPixel
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("ltdc: failed to map %s: %w", path, err)
	}
	return &fbdevMemory{f: f, data: data, fb: halfwords(data)}, nil
}

type fbdevMemory struct {
	f    *os.File
	data []byte
	fb   []uint16
}

func (m *fbdevMemory) Framebuffer() []uint16 { return m.fb }
func (m *fbdevMemory) Registers() []uint32   { return nil }

func (m *fbdevMemory) Close() error {
	return errors.Join(unix.Munmap(m.data), m.f.Close())
}
