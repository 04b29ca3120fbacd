package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/session"
)

func registerChromeHandlers(table map[intent.Command]Handler) {
	table[intent.CommandSetColor] = handleSetColor
	table[intent.CommandSetFont] = handleSetFont
	table[intent.CommandToggleSidebar] = handleToggleSidebar
	table[intent.CommandTabFormatVertical] = handleTabLayout(session.LayoutVertical)
	table[intent.CommandTabFormatHorizontal] = handleTabLayout(session.LayoutHorizontal)
	table[intent.CommandOpenNotes] = handleOpenNotes
}

func handleSetColor(_ context.Context, req *Request) *Outcome {
	color := strings.TrimSpace(req.Intent.Query)
	if color == "" {
		return Say("Which color would you like the browser chrome to be?")
	}
	req.State.SetThemeColor(color)
	return Confirm("set_color", confirmMessage(req.Intent, fmt.Sprintf("The chrome is now %s.", color)))
}

func handleSetFont(_ context.Context, req *Request) *Outcome {
	style := strings.TrimSpace(req.Intent.Query)
	if style == "" {
		return Say("Which font style would you like? Something like \"font-family: 'Arial'; font-size: 14pt;\".")
	}
	req.State.SetFontStyle(style)
	return Confirm("set_font", confirmMessage(req.Intent, "The font has been changed."))
}

func handleToggleSidebar(_ context.Context, req *Request) *Outcome {
	visible := req.State.ToggleSidebar()
	msg := "The sidebar is now hidden."
	if visible {
		msg = "The sidebar is now visible."
	}
	return Confirm("toggle_sidebar", confirmMessage(req.Intent, msg))
}

func handleTabLayout(layout session.TabLayout) Handler {
	return func(_ context.Context, req *Request) *Outcome {
		req.State.SetLayout(layout)
		msg := "Tabs are now arranged horizontally."
		if layout == session.LayoutVertical {
			msg = "Tabs are now arranged vertically."
		}
		return Confirm("tab_layout", confirmMessage(req.Intent, msg))
	}
}

func handleOpenNotes(_ context.Context, req *Request) *Outcome {
	req.State.ShowNotes()
	return Confirm("open_notes", confirmMessage(req.Intent, "Opening your notes."))
}
