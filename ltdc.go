package ltdc

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/ltdc/argb1555"
	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/internal/logger"
	"periph.io/x/devices/v3/ltdc/pixel"
)

const (
	bytesPerPixel = 2

	// DefaultFramebufferBase is the physical address of Layer1.
	DefaultFramebufferBase = 0xC000_0000
)

// Layer selects one of the two framebuffers.
type Layer uint8

const (
	Layer1 Layer = iota
	Layer2
)

// Layers lists every layer in address order.
var Layers = [...]Layer{Layer1, Layer2}

func (l Layer) valid() bool {
	return l == Layer1 || l == Layer2
}

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer1"
	case Layer2:
		return "Layer2"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

var (
	// ErrHalted is returned by operations on a halted device.
	ErrHalted = errors.New("ltdc: halted")

	// ErrNoRegisters is returned when the memory backend does not expose
	// the controller registers.
	ErrNoRegisters = errors.New("ltdc: no controller registers")
)

// Opts is the configuration for the display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 480)
	H int // Height (default: 272)

	// FramebufferBase is the physical address of Layer1. Layer2 follows
	// directly after it. Default: DefaultFramebufferBase.
	FramebufferBase uint64

	// ClearColor is written by ClearScreen. Default: transparent black.
	ClearColor argb1555.Color

	// Optional control pins, nil if not wired
	Enable    gpio.PinOut // Display enable
	Backlight gpio.PinOut // Backlight enable
}

// Dev is the device handle for the display.
type Dev struct {
	mem  Memory
	fb   []uint16
	regs []uint32

	// Display geometry
	rect      geom.Rect
	base      uint64
	layerSize int // pixels per layer

	clear argb1555.Color
	front Layer

	enable    gpio.PinOut
	backlight gpio.PinOut

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// New creates a device over mem.
//
// opts can be nil to use defaults (480x272 display at 0xC0000000).
// The framebuffer of mem must hold both layers.
func New(mem Memory, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	// Apply defaults on a copy, the caller's Opts is not modified
	o := *opts
	if o.W == 0 && o.H == 0 {
		o.W, o.H = 480, 272
	}
	if o.FramebufferBase == 0 {
		o.FramebufferBase = DefaultFramebufferBase
	}

	// Coordinates are uint16
	if o.W <= 0 || o.W > 0xFFFF {
		return nil, errors.New("ltdc: width must be between 1 and 65535")
	}
	if o.H <= 0 || o.H > 0xFFFF {
		return nil, errors.New("ltdc: height must be between 1 and 65535")
	}
	if mem == nil {
		return nil, errors.New("ltdc: nil memory")
	}
	// Both layers must fit in the framebuffer
	fb := mem.Framebuffer()
	if need := len(Layers) * o.W * o.H; len(fb) < need {
		return nil, fmt.Errorf("ltdc: framebuffer holds %d pixels, need %d", len(fb), need)
	}

	d := &Dev{
		mem:       mem,
		fb:        fb,
		regs:      mem.Registers(),
		rect:      geom.R(0, 0, uint16(o.W), uint16(o.H)),
		base:      o.FramebufferBase,
		layerSize: o.W * o.H,
		clear:     o.ClearColor,
		front:     Layer1,
		enable:    o.Enable,
		backlight: o.Backlight,
	}
	logger.L().Info("ltdc: device ready", "width", o.W, "height", o.H, "base", fmt.Sprintf("0x%08X", o.FramebufferBase))
	return d, nil
}

// Rect returns the display area.
func (d *Dev) Rect() geom.Rect {
	return d.rect
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return argb1555.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(d.rect.Width), int(d.rect.Height))
}

// AddrOf returns the physical address of p in layer l.
//
// It panics if p is outside the display or l is not a layer; callers check
// bounds first.
func (d *Dev) AddrOf(p geom.Point, l Layer) uint64 {
	if !d.rect.Contains(p) || !l.valid() {
		panic(fmt.Sprintf("ltdc: address of %v in %v out of range", p, l))
	}
	// Layers are laid out back to back, rows are Width pixels long
	base := d.base + uint64(l)*uint64(d.layerSize)*bytesPerPixel
	offset := (uint64(p.Y)*uint64(d.rect.Width) + uint64(p.X)) * bytesPerPixel
	return base + offset
}

// store writes one pixel. It is the only code that writes framebuffer
// memory: a single halfword store at AddrOf(p, l), never a read.
func (d *Dev) store(p geom.Point, l Layer, v argb1555.Color) {
	// fb starts at the physical base, so the byte offset from base divided
	// by the pixel size is the element index. Layer2 follows Layer1.
	i := (d.AddrOf(p, l) - d.base) / bytesPerPixel
	d.fb[i] = uint16(v)
}

// writable reports whether pixels may be stored in layer l.
func (d *Dev) writable(l Layer) bool {
	return !d.halted && d.fb != nil && l.valid()
}

// WritePixel writes a packed pixel. Points outside the display are
// ignored, as are writes to a halted device.
func (d *Dev) WritePixel(p geom.Point, l Layer, v argb1555.Color) {
	if !d.writable(l) || !d.rect.Contains(p) {
		return
	}
	d.store(p, l, v)
}

// DrawPoint writes c at p.
func (d *Dev) DrawPoint(p geom.Point, l Layer, c pixel.Color) {
	d.WritePixel(p, l, c.ARGB1555())
}

// FillRect writes v to the part of r that lies on the display.
func (d *Dev) FillRect(r geom.Rect, l Layer, v argb1555.Color) {
	if !d.writable(l) {
		return
	}
	// Clip once, then every point is known to be on the display.
	for p := range r.Intersect(d.rect).Points() {
		d.store(p, l, v)
	}
}

// DrawLine draws l on layer ly. Lines with an endpoint off the display are
// not drawn at all.
func (d *Dev) DrawLine(l geom.Line, ly Layer, c pixel.Color) {
	if !d.writable(ly) {
		return
	}
	// Every point of a line lies in the bounding box of its endpoints, so
	// checking both endpoints is enough.
	if !d.rect.Contains(l.From) || !d.rect.Contains(l.To) {
		logger.L().Debug("ltdc: line rejected", "from", l.From, "to", l.To)
		return
	}
	v := c.ARGB1555()
	for p := range l.Points() {
		d.store(p, ly, v)
	}
}

// ClearScreen fills both layers with the clear color.
func (d *Dev) ClearScreen() {
	for _, l := range Layers {
		d.FillRect(d.rect, l, d.clear)
	}
}

// Sink returns a pixel sink drawing to layer l.
func (d *Dev) Sink(l Layer) pixel.Sink {
	return layerSink{d: d, l: l}
}

// layerSink is the Sink for one layer of a Dev.
type layerSink struct {
	d *Dev
	l Layer
}

// Draw implements pixel.Sink.
func (s layerSink) Draw(p geom.Point, c pixel.Color) {
	s.d.WritePixel(p, s.l, c.ARGB1555())
}

// Snapshot returns a copy of layer l. A halted device returns a blank
// image.
func (d *Dev) Snapshot(l Layer) *argb1555.Image {
	img := argb1555.NewImage(d.Bounds())
	if !d.writable(l) {
		return img
	}
	start := int(l) * d.layerSize
	copy(img.Pix, d.fb[start:start+d.layerSize])
	return img
}

// Front returns the layer being displayed.
func (d *Dev) Front() Layer {
	return d.front
}

// Back returns the hidden layer, the one to draw the next frame in.
func (d *Dev) Back() Layer {
	if d.front == Layer1 {
		return Layer2
	}
	return Layer1
}

// Draw draws src into the back layer. It implements display.Drawer.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	clipped := dst.Intersect(d.Bounds())
	if clipped.Empty() {
		return nil
	}
	// sp is aligned with the unclipped dst.Min; move it by what clipping
	// cut off the top and left.
	sp = sp.Add(clipped.Min.Sub(dst.Min))

	back := d.Back()
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			// Convert through the model so any source image works
			c := argb1555.Model.Convert(src.At(sp.X+x-clipped.Min.X, sp.Y+y-clipped.Min.Y)).(argb1555.Color)
			d.store(geom.Pt(uint16(x), uint16(y)), back, c)
		}
	}
	return nil
}

// Enable drives the display enable pin. It does nothing if the pin is not
// wired.
func (d *Dev) Enable(on bool) error {
	if d.halted {
		return ErrHalted
	}
	return setPin(d.enable, on)
}

// Backlight drives the backlight pin. It does nothing if the pin is not
// wired.
func (d *Dev) Backlight(on bool) error {
	if d.halted {
		return ErrHalted
	}
	return setPin(d.backlight, on)
}

func setPin(p gpio.PinOut, on bool) error {
	if p == nil {
		return nil
	}
	if err := p.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("ltdc: failed to drive %s: %w", p, err)
	}
	return nil
}

// Halt turns the backlight and the display off.
// After calling Halt, the display will not respond to further commands
// until a new device is created, and pixel writes are ignored.
func (d *Dev) Halt() error {
	d.halted = true
	return errors.Join(setPin(d.backlight, false), setPin(d.enable, false))
}

// Close halts the device and releases its memory mapping. The device
// must not be used afterwards; drawing calls are ignored.
func (d *Dev) Close() error {
	err := d.Halt()
	if d.mem == nil {
		return err
	}
	err = errors.Join(err, d.mem.Close())
	// Drop the references to the unmapped pages.
	d.mem, d.fb, d.regs = nil, nil, nil
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ltdc.Dev{%dx%d}", d.rect.Width, d.rect.Height)
}
