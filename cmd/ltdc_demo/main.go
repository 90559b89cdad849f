// Package main demonstrates the LTDC display driver.
//
// This example shows how to:
// - Map the framebuffers from /dev/mem, a Linux framebuffer device or RAM
// - Draw lines and rectangles
// - Render aligned, wrapped text with a TrueType font
// - Draw into the back layer and swap it in
// - Save the drawn frame as a PNG or preview it in the terminal
//
// Without hardware, run it against RAM and look at the result:
//
//	go run ./cmd/ltdc_demo -backend ram -preview
//	go run ./cmd/ltdc_demo -backend ram -png out.png -text "Hello world"
//
// On a board with the controller memory mapped:
//
//	ltdc_demo -backend pmem -base 0xC0000000 -regs 0x40016800 -enable GPIO12 -backlight GPIO13
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"golang.org/x/exp/mmap"
	"golang.org/x/image/font/gofont/goregular"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"periph.io/x/devices/v3/ltdc"
	"periph.io/x/devices/v3/ltdc/font"
	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/pixel"
	"periph.io/x/devices/v3/ltdc/preview"
	"periph.io/x/devices/v3/ltdc/text"
)

var (
	backend   = flag.String("backend", "ram", "Framebuffer memory: ram, pmem or fbdev")
	fbPath    = flag.String("fb", "/dev/fb0", "Framebuffer device for -backend fbdev")
	fbBase    = flag.Uint64("base", ltdc.DefaultFramebufferBase, "Physical address of layer 1 for -backend pmem")
	regBase   = flag.Uint64("regs", 0, "Physical address of the controller registers for -backend pmem (0 to skip)")
	width     = flag.Int("width", 480, "Display width in pixels")
	height    = flag.Int("height", 272, "Display height in pixels")
	fontPath  = flag.String("font", "", "TrueType font file (empty for Go Regular)")
	fontSize  = flag.Uint("size", 24, "Font size in pixels")
	message   = flag.String("text", "The quick brown fox\njumps over the lazy dog", "Text to render")
	align     = flag.String("align", "center", "Text alignment: left, center or right")
	pngPath   = flag.String("png", "", "Write the drawn frame to this PNG file")
	showTerm  = flag.Bool("preview", false, "Show the drawn frame in the terminal")
	enablePin = flag.String("enable", "", "Display enable GPIO pin name (empty if not wired)")
	blPin     = flag.String("backlight", "", "Backlight GPIO pin name (empty if not wired)")
	demoMode  = flag.String("demo", "all", "Demo to run: all, text, lines")
	verbose   = flag.Bool("v", false, "Log driver activity")
)

func main() {
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()
	lg := zl.Sugar()

	if *verbose {
		ltdc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(lg); err != nil {
		// Flush before exiting; deferred calls do not run after os.Exit.
		lg.Errorw("demo failed", "error", err)
		_ = zl.Sync()
		os.Exit(1)
	}
	lg.Info("demo complete")
}

func run(lg *zap.SugaredLogger) error {
	// Initialize periph.io
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	mem, err := openMemory()
	if err != nil {
		return err
	}

	enable, err := lookupPin(*enablePin)
	if err != nil {
		return err
	}
	backlight, err := lookupPin(*blPin)
	if err != nil {
		return err
	}

	dev, err := ltdc.New(mem, &ltdc.Opts{
		W:               *width,
		H:               *height,
		FramebufferBase: *fbBase,
		ClearColor:      pixel.Black.ARGB1555(),
		Enable:          enable,
		Backlight:       backlight,
	})
	if err != nil {
		_ = mem.Close()
		return fmt.Errorf("failed to create display: %w", err)
	}
	defer dev.Close()
	lg.Infow("display initialized", "dev", dev.String(), "backend", *backend)

	dev.ClearScreen()
	if err := dev.Enable(true); err != nil {
		return err
	}
	if err := dev.Backlight(true); err != nil {
		return err
	}
	if err := dev.SetBackground(pixel.Black); err != nil && !errors.Is(err, ltdc.ErrNoRegisters) {
		return err
	}

	switch *demoMode {
	case "all":
		runLinesDemo(lg, dev)
		err = runTextDemo(lg, dev)
	case "lines":
		runLinesDemo(lg, dev)
	case "text":
		err = runTextDemo(lg, dev)
	default:
		return fmt.Errorf("unknown demo: %s", *demoMode)
	}
	if err != nil {
		return err
	}

	// Present the frame drawn in the back layer.
	shown := dev.Back()
	if err := dev.Swap(); err != nil {
		if !errors.Is(err, ltdc.ErrNoRegisters) {
			return err
		}
		lg.Warn("no controller registers, layer switch skipped")
	}

	if *pngPath != "" {
		if err := writePNG(dev, shown, *pngPath); err != nil {
			return err
		}
		lg.Infow("snapshot written", "path", *pngPath)
	}
	if *showTerm {
		return showPreview(dev, shown)
	}
	return nil
}

func openMemory() (ltdc.Memory, error) {
	switch *backend {
	case "ram":
		return ltdc.NewRAM(*width, *height), nil
	case "pmem":
		return ltdc.MapPhysical(*fbBase, *width, *height, *regBase)
	case "fbdev":
		return ltdc.OpenFramebuffer(*fbPath, *width, *height)
	default:
		return nil, fmt.Errorf("unknown backend: %s", *backend)
	}
}

func lookupPin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return p, nil
}

// loadFont memory-maps the font file, or uses Go Regular.
func loadFont(size uint16) (*font.Font, error) {
	if *fontPath == "" {
		return font.New(goregular.TTF, size)
	}
	r, err := mmap.Open(*fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open font: %w", err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return font.New(data, size)
}

// runLinesDemo draws a frame, diagonals and a color ramp in the back layer.
func runLinesDemo(lg *zap.SugaredLogger, dev *ltdc.Dev) {
	lg.Info("drawing lines")
	back := dev.Back()
	r := dev.Rect()
	w, h := r.Width, r.Height
	s := dev.Sink(back)

	pixel.StrokeRect(s, r, pixel.White)
	dev.DrawLine(geom.Line{From: geom.Pt(0, 0), To: geom.Pt(w-1, h-1)}, back, pixel.RGB(255, 0, 0))
	dev.DrawLine(geom.Line{From: geom.Pt(w-1, 0), To: geom.Pt(0, h-1)}, back, pixel.RGB(0, 0, 255))

	for x := uint16(0); x < w; x++ {
		c := pixel.Blend(pixel.RGB(0, 255, 0), pixel.RGB(255, 0, 255), uint8(uint32(x)*255/uint32(w)))
		dev.DrawLine(geom.Line{From: geom.Pt(x, h-8), To: geom.Pt(x, h-2)}, back, c)
	}
}

// runTextDemo renders the message in a box across the upper half of the
// back layer.
func runTextDemo(lg *zap.SugaredLogger, dev *ltdc.Dev) error {
	a, err := text.ParseAlignment(*align)
	if err != nil {
		return err
	}
	if *fontSize == 0 || *fontSize > 0xFFFF {
		return fmt.Errorf("font size %d out of range", *fontSize)
	}
	f, err := loadFont(uint16(*fontSize))
	if err != nil {
		return err
	}

	r := dev.Rect()
	tb := &text.TextBox{
		Canvas:    geom.R(8, 8, r.Width-16, r.Height/2),
		Alignment: a,
		Font:      f,
		FG:        pixel.White,
		BG:        pixel.RGB(0, 0, 64),
	}
	laid, err := tb.Layout(*message)
	if err != nil {
		return err
	}
	lg.Infow("rendering text", "font", f.String(), "align", a.String(), "rect", laid.String())
	return tb.Redraw(dev.Sink(dev.Back()), *message)
}

func writePNG(dev *ltdc.Dev, l ltdc.Layer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dev.Snapshot(l)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func showPreview(dev *ltdc.Dev, l ltdc.Layer) error {
	r := dev.Rect()
	p, err := preview.New(r.Width, r.Height)
	if err != nil {
		return err
	}
	defer p.Close()
	p.DrawImage(dev.Snapshot(l))
	p.Show()
	p.Wait()
	return nil
}
