package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/navkit/pkg/analysis"
	"github.com/Dicklesworthstone/navkit/pkg/export"
	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/input"
	"github.com/Dicklesworthstone/navkit/pkg/journal"
	"github.com/Dicklesworthstone/navkit/pkg/layout"
	"github.com/Dicklesworthstone/navkit/pkg/ui"
)

//go:embed demo.yaml
var demoLayout []byte

func main() {
	layoutPath := flag.String("layout", "", "Layout YAML file (default: built-in demo)")
	mappingPath := flag.String("mapping", "", "Key/button mapping override YAML file")
	lint := flag.Bool("lint", false, "Check which elements directional navigation can reach, then exit")
	exportSVG := flag.String("export-svg", "", "Write a layout snapshot SVG to this path, then exit")
	exportPNG := flag.String("export-png", "", "Write a layout snapshot PNG to this path, then exit")
	record := flag.String("record", "", "Record every resolved event to this sqlite journal")
	debug := flag.String("debug", "", "Write structured resolution logs to this file")
	watch := flag.Bool("watch", false, "Reload the layout file when it changes (requires -layout)")
	version := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: navkit [options]")
		fmt.Println("\nA focus-navigation demo: drive a menu with keyboard or mouse.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("navkit version 0.1.0")
		os.Exit(0)
	}

	lay, err := loadLayout(*layoutPath)
	if err != nil {
		fmt.Printf("Error loading layout: %v\n", err)
		os.Exit(1)
	}

	if *lint {
		os.Exit(runLint(lay))
	}
	if *exportSVG != "" || *exportPNG != "" {
		os.Exit(runExport(lay, *exportSVG, *exportPNG))
	}

	mapping := input.DefaultMapping()
	if *mappingPath != "" {
		mapping, err = input.LoadMapping(*mappingPath)
		if err != nil {
			fmt.Printf("Error loading mapping: %v\n", err)
			os.Exit(1)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("navkit needs a terminal; use -lint or -export-svg for non-interactive runs.")
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if *debug != "" {
		logFile, err := os.OpenFile(*debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	m := ui.NewModel(lay, mapping).WithLogger(logger)

	if *record != "" {
		db, err := journal.Open(*record)
		if err != nil {
			fmt.Printf("Error opening journal: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		m = m.WithJournal(db)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if *watch {
		if *layoutPath == "" {
			fmt.Println("-watch requires -layout.")
			os.Exit(1)
		}
		path := *layoutPath
		g.Go(func() error {
			return layout.Watch(gctx, path, func(l *layout.Layout, err error) {
				p.Send(ui.LayoutMsg{Layout: l, Err: err})
			})
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	if err := g.Wait(); err != nil {
		fmt.Printf("Error running navkit: %v\n", err)
		os.Exit(1)
	}
}

func loadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.Parse(demoLayout)
	}
	return layout.Load(path)
}

// runLint reports which elements a player can reach with directional
// navigation alone, starting from the layout's default focus.
func runLint(lay *layout.Layout) int {
	g := lay.Graph
	start, ok := g.DefaultMember(g.Root())
	if !ok {
		fmt.Println("Layout has no focusable elements.")
		return 1
	}

	res := analysis.Reachability(g, start)
	fmt.Printf("start: %s\n", elemName(g, res.Start))
	fmt.Printf("reachable: %d of %d\n", len(res.Reachable), len(g.ElementIDs()))
	if len(res.Unreachable) == 0 {
		return 0
	}
	fmt.Println("unreachable:")
	for _, e := range res.Unreachable {
		fmt.Printf("  %s\n", elemName(g, e))
	}
	return 1
}

func runExport(lay *layout.Layout, svgPath, pngPath string) int {
	g := lay.Graph
	focused, ok := g.DefaultMember(g.Root())
	if !ok {
		focused = focus.NoElem
	}

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			fmt.Printf("Error writing SVG: %v\n", err)
			return 1
		}
		export.WriteSVG(f, g, focused)
		if err := f.Close(); err != nil {
			fmt.Printf("Error writing SVG: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if pngPath != "" {
		if err := export.WritePNG(pngPath, g, focused); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return 0
}

func elemName(g *focus.Graph, e focus.ElemID) string {
	if name := g.Name(e); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", int(e))
}
