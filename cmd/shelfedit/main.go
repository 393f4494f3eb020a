package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shelfgrid/config"
	"github.com/milk9111/shelfgrid/macro"
	"golang.design/x/clipboard"
)

func main() {
	cfgPath := flag.String("config", "shelfedit.yaml", "Path to the editor config file")
	macroPath := flag.String("macro", "", "Optional Tengo script to run against the session on startup")
	viewOnly := flag.Bool("view", false, "Start in view mode")
	unsafeDelete := flag.Bool("unsafe-delete", false, "Disable the connectivity guard on deletions")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Println("Shelf editor starting...")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *cfgPath, err)
	}
	if *viewOnly {
		cfg.EditMode = false
	}
	if *unsafeDelete {
		cfg.SafeDelete = false
	}
	if *debug {
		cfg.Debug = true
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		clipboardOK = false
	}

	g := newGame(cfg, *cfgPath, clipboardOK)

	if *macroPath != "" {
		src, err := os.ReadFile(*macroPath)
		if err != nil {
			log.Fatalf("Failed to read macro %s: %v", *macroPath, err)
		}
		if err := macro.NewRunner(g.session).Run(src); err != nil {
			log.Fatalf("Macro failed: %v", err)
		}
		log.Printf("Ran macro %s, %d cells", *macroPath, g.session.CellCount())
	}

	watcher, err := config.NewWatcher(filepath.Dir(*cfgPath))
	if err != nil {
		log.Printf("Config watcher unavailable: %v", err)
	} else {
		g.watcher = watcher
		defer watcher.Close()
	}

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("Shelf Grid Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Editor exited: %v", err)
	}
}
