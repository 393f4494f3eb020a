package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/shelfgrid/grid"
	"golang.design/x/clipboard"
)

// copySelection writes the selected cell keys to the system clipboard as a
// semicolon-joined list, e.g. "0,0;1,0;1,1".
func (g *Game) copySelection() {
	if !g.clipboardOK {
		return
	}

	var keys []string
	if multi := g.session.MultiSelected(); len(multi) > 0 {
		for k := range multi {
			keys = append(keys, string(k))
		}
	} else if id, ok := g.session.Selected(); ok {
		for _, c := range g.session.Cells() {
			if c.ID == id {
				keys = append(keys, string(grid.MakeKey(c.GX, c.GY)))
				break
			}
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(keys, ";")))
	g.pushToast(fmt.Sprintf("copied %d cells", len(keys)))
}

// pasteCells reads keys from the clipboard and places them on the grid.
// Already-occupied cells are skipped.
func (g *Game) pasteCells() {
	if !g.clipboardOK || !g.session.EditMode() {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}

	placed := 0
	for _, part := range strings.Split(string(data), ";") {
		gx, gy, ok := grid.Key(strings.TrimSpace(part)).Coords()
		if !ok {
			continue
		}
		if g.session.AddCellAt(gx, gy) {
			placed++
		}
	}
	if placed > 0 {
		g.pushToast(fmt.Sprintf("pasted %d cells", placed))
	}
}
