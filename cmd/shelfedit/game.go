package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/shelfgrid/config"
	"github.com/milk9111/shelfgrid/session"
)

const toolbarHeight = 48

type toast struct {
	msg   string
	until time.Time
}

// pendingConfirm holds a staged destructive deletion until the user decides.
type pendingConfirm struct {
	n       int
	perform func()
}

// Game is the Ebiten shell around the edit session.
type Game struct {
	session *session.Session
	baker   *Baker
	cfg     config.Config
	cfgPath string

	ui      *ebitenui.UI
	buttons *toolbarButtons
	watcher *config.Watcher

	screenW int
	screenH int

	// overlay images, rebuilt on theme change
	hoverImg    *ebiten.Image
	selectedImg *ebiten.Image
	multiImg    *ebiten.Image
	marqueePx   *ebiten.Image
	bgColor     color.RGBA

	// pointer state
	marqueeDragging bool
	panning         bool
	lastPanX        int
	lastPanY        int
	pinching        bool
	prevPinchDist   float64

	toasts  []toast
	confirm *pendingConfirm

	statusCells int
	statusMulti int

	clipboardOK bool
	lastTick    time.Time
}

func newGame(cfg config.Config, cfgPath string, clipboardOK bool) *Game {
	g := &Game{
		cfg:         cfg,
		cfgPath:     cfgPath,
		clipboardOK: clipboardOK,
		screenW:     1280,
		screenH:     800,
		lastTick:    time.Now(),
	}
	g.baker = newBaker(cfg.Theme)
	g.applyTheme(cfg.Theme)

	g.session = session.New(g.baker, session.Callbacks{
		OnCellCount:  func(n int) { g.statusCells = n },
		OnMultiCount: func(n int) { g.statusMulti = n },
		OnHistory: func(canUndo, canRedo bool) {
			if g.buttons != nil {
				g.buttons.setHistory(canUndo, canRedo)
			}
		},
		OnDeleteBlocked: func(reason string) { g.pushToast(reason) },
		OnConfirmDelete: func(n int, perform func()) {
			g.confirm = &pendingConfirm{n: n, perform: perform}
		},
	}, session.Options{
		EditMode:   cfg.EditMode,
		SafeDelete: cfg.SafeDelete,
		Debug:      cfg.Debug,
	})
	g.statusCells = g.session.CellCount()

	g.ui, g.buttons = buildToolbarUI(g)
	return g
}

func (g *Game) applyTheme(theme config.Theme) {
	g.baker.SetTheme(theme)
	g.hoverImg = tintImage(cellPx, parseHexColor(theme.Hover), 0x50)
	g.selectedImg = tintImage(cellPx, parseHexColor(theme.Selected), 0x78)
	g.multiImg = tintImage(cellPx, parseHexColor(theme.Multi), 0x78)
	g.marqueePx = outlinePixel(parseHexColor(theme.Marquee))
	g.bgColor = parseHexColor(theme.Background)
}

func (g *Game) pushToast(msg string) {
	g.toasts = append(g.toasts, toast{msg: msg, until: time.Now().Add(3 * time.Second)})
}

func (g *Game) Update() error {
	g.drainWatcher()

	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now

	if g.ui != nil {
		g.ui.Update()
	}

	g.handleConfirmKeys()
	if g.confirm == nil {
		g.handleKeyboard()
		g.handleMouse()
		g.handleTouch()
	}

	g.session.Step(float64(dt.Milliseconds()))

	// drop expired toasts
	live := g.toasts[:0]
	for _, t := range g.toasts {
		if now.Before(t.until) {
			live = append(live, t)
		}
	}
	g.toasts = live
	return nil
}

// drainWatcher applies config file changes without blocking the frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(g.cfgPath)
			if err != nil {
				log.Printf("config reload failed: %v", err)
				continue
			}
			g.cfg.Theme = cfg.Theme
			g.applyTheme(cfg.Theme)
			log.Printf("reloaded theme from %s", name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("config watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)

	w := float64(g.screenW)
	h := float64(g.screenH)
	g.baker.Draw(screen, g.session, w, h)
	g.drawHighlights(screen, w, h)
	g.drawMarquee(screen, w, h)

	if g.ui != nil {
		g.ui.Draw(screen)
	}
	g.drawStatus(screen)
	g.drawToasts(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	mode := "view"
	if g.session.EditMode() {
		mode = "edit"
	}
	status := fmt.Sprintf("cells: %d  selected: %d  mode: %s  zoom: %.2f",
		g.statusCells, g.statusMulti, mode, g.session.Camera().Scale)
	if g.session.EdgeErrors() > 0 {
		status += fmt.Sprintf("  edge errors: %d", g.session.EdgeErrors())
	}
	ebitenutil.DebugPrintAt(screen, status, 8, g.screenH-20)
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	y := g.screenH - 44
	for i := len(g.toasts) - 1; i >= 0; i-- {
		ebitenutil.DebugPrintAt(screen, g.toasts[i].msg, 8, y)
		y -= 18
	}
	if g.confirm != nil {
		msg := fmt.Sprintf("delete %d cells? (Y/N)", g.confirm.n)
		ebitenutil.DebugPrintAt(screen, msg, g.screenW/2-80, toolbarHeight+12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW = outsideWidth
	g.screenH = outsideHeight
	g.session.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
