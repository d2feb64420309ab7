// Command disasmtui is a scrollable interactive AArch64 disassembly
// browser — SPEC_FULL.md §4.14. It has no execution model: it loads a
// binary, disassembles it once, and lets the user walk the listing.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/aarch64-disasm/config"
	"github.com/lookbusy1344/aarch64-disasm/decoder"
	"github.com/lookbusy1344/aarch64-disasm/formatter"
)

// browser holds the single-screen disassembly viewer.
type browser struct {
	App             *tview.Application
	DisassemblyView *tview.TextView
	StatusView      *tview.TextView

	lines []string
	row   int
}

func newBrowser(cfg *config.Config, path string, lines []string) *browser {
	b := &browser{
		App:   tview.NewApplication(),
		lines: lines,
	}

	b.DisassemblyView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.DisassemblyView.SetBorder(true).SetTitle(" Disassembly ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")
	b.StatusView.SetText(fmt.Sprintf("%s  |  %d instructions  |  format=%s  |  j/k scroll, g/G top/bottom, q quit",
		path, len(lines), cfg.Display.NumberFormat))

	b.DisassemblyView.SetText(strings.Join(lines, "\n"))

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.DisassemblyView, 0, 1, true).
		AddItem(b.StatusView, 3, 0, false)

	b.App.SetRoot(layout, true).SetFocus(b.DisassemblyView)
	b.setupKeyBindings()

	return b
}

func (b *browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case event.Rune() == 'q':
			b.App.Stop()
			return nil
		case event.Rune() == 'j' || event.Key() == tcell.KeyDown:
			b.scrollBy(1)
			return nil
		case event.Rune() == 'k' || event.Key() == tcell.KeyUp:
			b.scrollBy(-1)
			return nil
		case event.Rune() == 'g':
			b.scrollTo(0)
			return nil
		case event.Rune() == 'G':
			b.scrollTo(len(b.lines) - 1)
			return nil
		}
		return event
	})
}

func (b *browser) scrollBy(delta int) {
	b.scrollTo(b.row + delta)
}

func (b *browser) scrollTo(row int) {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	b.row = row
	b.DisassemblyView.ScrollTo(row, 0)
}

func (b *browser) Run() error {
	return b.App.Run()
}

func main() {
	var (
		addrFlag   = flag.Uint64("address", 0, "Base address of the first instruction")
		configPath = flag.String("config", "", "Path to a TOML config file")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: disasmtui [-address N] [-config PATH] <binary-file>")
		os.Exit(1)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	address := *addrFlag
	if address == 0 {
		address = cfg.Decode.StartAddress
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified input file
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	var lines []string
	for off := 0; off+4 <= len(data); off += 4 {
		word := binary.LittleEndian.Uint32(data[off:])
		pc := address + uint64(off)
		inst, ok := decoder.Decode(word, pc)

		prefix := fmt.Sprintf("0x%08x:  %08x  ", pc, word)
		text := formatter.Format(inst)
		if !ok {
			text = "[red]" + text + "[white]"
		}
		lines = append(lines, prefix+text)
	}

	b := newBrowser(cfg, path, lines)
	if err := b.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
