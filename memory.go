package ltdc

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"periph.io/x/host/v3/pmem"
)

// Memory is the storage behind a Dev: the pixels of both layers and,
// when available, the controller register block.
type Memory interface {
	io.Closer
	// Framebuffer returns both layers, Layer1 first, one element per pixel.
	Framebuffer() []uint16
	// Registers returns the controller register block, or nil.
	Registers() []uint32
}

// NewRAM returns Memory backed by ordinary memory, sized for a w x h
// display. It is used for simulation and tests.
func NewRAM(w, h int) Memory {
	return &ramMemory{
		fb:   make([]uint16, len(Layers)*w*h),
		regs: make([]uint32, regBlock/4),
	}
}

type ramMemory struct {
	fb   []uint16
	regs []uint32
}

func (m *ramMemory) Framebuffer() []uint16 { return m.fb }
func (m *ramMemory) Registers() []uint32   { return m.regs }
func (m *ramMemory) Close() error          { return nil }

// MapPhysical maps the framebuffers of a w x h display at fbBase and the
// controller register block at regBase from physical memory. regBase 0
// skips the registers. It requires access to /dev/mem.
func MapPhysical(fbBase uint64, w, h int, regBase uint64) (Memory, error) {
	fbView, err := pmem.Map(fbBase, len(Layers)*w*h*bytesPerPixel)
	if err != nil {
		return nil, fmt.Errorf("ltdc: failed to map framebuffer at 0x%08X: %w", fbBase, err)
	}
	m := &physMemory{fbView: fbView, fb: halfwords(fbView.Bytes())}

	if regBase != 0 {
		regView, err := pmem.Map(regBase, regBlock)
		if err != nil {
			_ = fbView.Close()
			return nil, fmt.Errorf("ltdc: failed to map registers at 0x%08X: %w", regBase, err)
		}
		m.regView = regView
		m.regs = words(regView.Bytes())
	}
	return m, nil
}

type physMemory struct {
	fbView  *pmem.View
	regView *pmem.View
	fb      []uint16
	regs    []uint32
}

func (m *physMemory) Framebuffer() []uint16 { return m.fb }
func (m *physMemory) Registers() []uint32   { return m.regs }

func (m *physMemory) Close() error {
	var errs []error
	if m.regView != nil {
		errs = append(errs, m.regView.Close())
	}
	errs = append(errs, m.fbView.Close())
	return errors.Join(errs...)
}

// halfwords reinterprets a mapped byte range as pixels.
func halfwords(b []byte) []uint16 {
	if len(b) < 2 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)
}

// words reinterprets a mapped byte range as registers.
func words(b []byte) []uint32 {
	if len(b) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4)
}
