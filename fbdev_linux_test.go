//go:build linux

package ltdc

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/pixel"
)

// newFramebufferFile returns a regular file sized like a w x h device.
func newFramebufferFile(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fb0")
	if err := os.WriteFile(path, make([]byte, len(Layers)*w*h*bytesPerPixel), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestOpenFramebuffer(t *testing.T) {
	path := newFramebufferFile(t, 4, 3)
	mem, err := OpenFramebuffer(path, 4, 3)
	if err != nil {
		t.Fatalf("OpenFramebuffer() error = %v", err)
	}
	if got, want := len(mem.Framebuffer()), 2*4*3; got != want {
		t.Errorf("framebuffer holds %d pixels, want %d", got, want)
	}
	if mem.Registers() != nil {
		t.Error("framebuffer devices should not expose registers")
	}

	dev, err := New(mem, &Opts{W: 4, H: 3})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	dev.WritePixel(geom.Pt(2, 1), Layer2, 0x8421)
	if err := dev.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// The shared mapping writes through to the file
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	off := (12 + 1*4 + 2) * bytesPerPixel
	if got := binary.NativeEndian.Uint16(data[off:]); got != 0x8421 {
		t.Errorf("layer2 (2,1) = 0x%04X, want 0x8421", got)
	}
}

func TestOpenFramebufferMissing(t *testing.T) {
	if _, err := OpenFramebuffer(filepath.Join(t.TempDir(), "none"), 4, 3); err == nil {
		t.Error("OpenFramebuffer() on a missing device should fail")
	}
}

func TestFramebufferWriteAfterClose(t *testing.T) {
	path := newFramebufferFile(t, 4, 4)
	mem, err := OpenFramebuffer(path, 4, 4)
	if err != nil {
		t.Fatalf("OpenFramebuffer() error = %v", err)
	}
	dev, err := New(mem, &Opts{W: 4, H: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// The pages are unmapped; these must be ignored, not fault
	dev.DrawPoint(geom.Pt(1, 1), Layer1, pixel.White)
	dev.FillRect(dev.Rect(), Layer2, 0xFFFF)
	dev.DrawLine(geom.Line{From: geom.Pt(0, 0), To: geom.Pt(3, 3)}, Layer1, pixel.White)
	dev.Sink(Layer2).Draw(geom.Pt(3, 3), pixel.White)
	dev.ClearScreen()
	if n := countSet(dev.Snapshot(Layer1)); n != 0 {
		t.Errorf("snapshot of closed device has %d pixels set, want 0", n)
	}
}
