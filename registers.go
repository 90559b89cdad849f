package ltdc

import (
	"periph.io/x/devices/v3/ltdc/internal/logger"
	"periph.io/x/devices/v3/ltdc/pixel"
)

// Controller register offsets in bytes, relative to the register block.
const (
	regSRCR  = 0x24  // Shadow reload configuration
	regBCCR  = 0x2C  // Background color configuration
	regL1CR  = 0x84  // Layer 1 control
	regL2CR  = 0x104 // Layer 2 control
	regBlock = 0x200 // Size of the register block

	srcrVBR = 1 << 1 // Reload shadow registers at vertical blanking
	lxcrLEN = 1 << 0 // Layer enable
)

func layerCR(l Layer) int {
	if l == Layer2 {
		return regL2CR
	}
	return regL1CR
}

// reg returns the register at byte offset off.
func (d *Dev) reg(off int) *uint32 {
	return &d.regs[off/4]
}

// SetBackground sets the color the controller shows where no layer is
// opaque.
func (d *Dev) SetBackground(c pixel.Color) error {
	if d.halted {
		return ErrHalted
	}
	if d.regs == nil {
		return ErrNoRegisters
	}
	*d.reg(regBCCR) = c.RGB888()
	*d.reg(regSRCR) = srcrVBR
	return nil
}

// Show makes l the displayed layer and hides the other one. The switch
// takes effect at the next vertical blanking period, so a frame drawn in
// the back layer appears without tearing.
func (d *Dev) Show(l Layer) error {
	if d.halted {
		return ErrHalted
	}
	if !l.valid() {
		return nil
	}
	if d.regs == nil {
		return ErrNoRegisters
	}
	for _, ly := range Layers {
		cr := d.reg(layerCR(ly))
		if ly == l {
			*cr |= lxcrLEN
		} else {
			*cr &^= lxcrLEN
		}
	}
	*d.reg(regSRCR) = srcrVBR
	d.front = l
	logger.L().Debug("ltdc: layer shown", "layer", l)
	return nil
}

// Swap shows the back layer.
func (d *Dev) Swap() error {
	return d.Show(d.Back())
}
