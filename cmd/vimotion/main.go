// Package main is a terminal host for the vimotion engine: it renders a
// single buffer with tcell and feeds every keystroke through the modal
// interpreter.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/textbuf"
	"github.com/dshills/vimotion/internal/vi"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	logPath    string
	logLevel   string
	file       string
}

func run() int {
	opts := parseFlags()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
	}

	var text string
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	_, height := screen.Size()
	buf := textbuf.FromString(text,
		textbuf.WithClipboard(&memClipboard{}),
		textbuf.WithViewport(viewRows(height)),
	)
	engine := vi.New(vi.WithConfig(cfg), vi.WithLogger(logger))

	// Config reloads arrive on the watcher goroutine; hand them to the
	// event loop as screen events so the engine is never touched
	// concurrently.
	if opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath, func(o config.Options, err error) {
			_ = screen.PostEvent(&configEvent{opts: o, err: err})
		})
		if err != nil {
			logger.Warn("config watch failed", "error", err)
		} else {
			defer w.Close()
		}
	}

	h := host{
		screen: screen,
		buf:    buf,
		engine: engine,
		file:   opts.file,
		log:    logger,
	}
	return h.loop()
}

// configEvent carries a reloaded configuration into the tcell event loop.
type configEvent struct {
	tcell.EventTime
	opts config.Options
	err  error
}

type host struct {
	screen tcell.Screen
	buf    *textbuf.Buffer
	engine *vi.Engine
	file   string
	log    *slog.Logger

	status string
}

func (h *host) loop() int {
	for {
		h.draw()

		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventResize:
			_, height := ev.Size()
			h.buf.SetViewportHeight(viewRows(height))
			h.screen.Sync()

		case *configEvent:
			if ev.err != nil {
				h.status = fmt.Sprintf("config reload failed: %v", ev.err)
				h.log.Warn("config reload failed", "error", ev.err)
				continue
			}
			h.engine.SetConfig(ev.opts)
			h.status = "config reloaded"

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return 0
			}
			if ev.Key() == tcell.KeyCtrlS {
				h.save()
				continue
			}
			h.status = ""
			if _, err := h.engine.HandleKey(h.buf, key.FromTcell(ev)); err != nil {
				h.status = err.Error()
			}
		}
	}
}

func (h *host) save() {
	if h.file == "" {
		h.status = "no file to save"
		return
	}
	if err := os.WriteFile(h.file, []byte(h.buf.String()), 0o644); err != nil {
		h.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	h.status = fmt.Sprintf("wrote %s", h.file)
}

// highlight style per reserved tag. Visual wins over find and search
// highlights when spans overlap.
var tagStyles = []struct {
	tag   int
	style tcell.Style
}{
	{vi.TagMatches, tcell.StyleDefault.Background(tcell.ColorDarkGoldenrod).Foreground(tcell.ColorBlack)},
	{vi.TagFinds, tcell.StyleDefault.Underline(true)},
	{vi.TagVisual, tcell.StyleDefault.Reverse(true)},
}

func (h *host) draw() {
	h.screen.Clear()
	width, height := h.screen.Size()
	rows := viewRows(height)
	top := h.buf.ScrollOffset()

	for row := 0; row < rows && top+row < h.buf.LineCount(); row++ {
		h.drawLine(row, top+row, width)
	}
	h.drawStatus(width, height)

	c := h.buf.Cursor()
	if c.Y >= top && c.Y < top+rows {
		h.screen.ShowCursor(c.X, c.Y-top)
	} else {
		h.screen.HideCursor()
	}
	h.screen.Show()
}

func (h *host) drawLine(screenRow, y, width int) {
	it := h.buf.LineGraphemesAt(y)
	x := 0
	for x < width {
		g, ok := it.Next()
		if !ok {
			break
		}
		style := tcell.StyleDefault
		for _, ts := range tagStyles {
			if len(h.buf.StylesIn(g.Span, ts.tag)) > 0 {
				style = ts.style
			}
		}
		rs := []rune(g.Str)
		h.screen.SetContent(x, screenRow, rs[0], rs[1:], style)
		x++
	}
}

func (h *host) drawStatus(width, height int) {
	c := h.buf.Cursor()
	left := fmt.Sprintf("-- %s --  %s", h.engine.Mode(), h.engine.Echo())
	if h.status != "" {
		left = h.status
	}
	right := fmt.Sprintf("%d,%d", c.Y+1, c.X+1)

	style := tcell.StyleDefault.Reverse(true)
	row := height - 1
	for x := 0; x < width; x++ {
		h.screen.SetContent(x, row, ' ', nil, style)
	}
	for x, r := range left {
		if x >= width {
			break
		}
		h.screen.SetContent(x, row, r, nil, style)
	}
	for i, r := range right {
		x := width - len(right) + i
		if x >= 0 {
			h.screen.SetContent(x, row, r, nil, style)
		}
	}
}

// viewRows is the buffer viewport: the screen minus the status line.
func viewRows(screenHeight int) int {
	if screenHeight < 2 {
		return 1
	}
	return screenHeight - 1
}

// memClipboard is a process-local clipboard for the "* register.
type memClipboard struct {
	s string
}

func (c *memClipboard) Get() (string, error) { return c.s, nil }
func (c *memClipboard) Set(s string) error   { c.s = s; return nil }

func newLogger(opts options) (*slog.Logger, func(), error) {
	var level slog.Level
	switch opts.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("invalid log level %q", opts.logLevel)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeLog = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vimotion - modal command interpreter demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vimotion [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: vi-style commands; C-s saves, C-q quits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vimotion %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}
	return opts
}
