package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/session"
)

// maxTabsPerCommand caps how many tabs one NEW_TAB command may open.
const maxTabsPerCommand = 50

func registerTabHandlers(table map[intent.Command]Handler) {
	table[intent.CommandNewTab] = handleNewTab
	table[intent.CommandCloseTab] = handleCloseTab
	table[intent.CommandSwitchTab] = handleSwitchTab
	table[intent.CommandReopenTab] = handleReopenTab
	table[intent.CommandNewWindow] = handleNewWindow
}

func handleNewTab(_ context.Context, req *Request) *Outcome {
	count := 1
	truncated := false

	if q := strings.TrimSpace(req.Intent.Query); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			return Say("Please give me a positive number of tabs to open.")
		}
		count = n
		if count > maxTabsPerCommand {
			count = maxTabsPerCommand
			truncated = true
		}
	}

	opened := 0
	for i := 0; i < count; i++ {
		if _, err := req.State.OpenTab(""); err != nil {
			if opened == 0 {
				return Apology(fmt.Sprintf("I'm sorry, I could not open a new tab: %v", err))
			}
			break
		}
		opened++
	}

	if truncated {
		// The model's own message would claim the full count, so report the cap instead.
		return Confirm("new_tab", fmt.Sprintf("Opened %d new tab(s); I must cap a single request at %d.", opened, maxTabsPerCommand))
	}
	return Confirm("new_tab", confirmMessage(req.Intent, fmt.Sprintf("Opened %d new tab(s) for you.", opened)))
}

func handleCloseTab(_ context.Context, req *Request) *Outcome {
	ended, err := req.State.CloseActive()
	if err != nil {
		if errors.Is(err, session.ErrNoActiveTab) {
			return noActiveTab()
		}
		return Apology(fmt.Sprintf("I'm sorry, the tab could not be closed: %v", err))
	}
	if ended {
		// Closing the last tab closes the window.
		return &Outcome{
			Effect:       "close_session",
			Message:      "That was the last tab, so I shall close the window. Farewell!",
			SessionEnded: true,
		}
	}
	return Confirm("close_tab", confirmMessage(req.Intent, "The tab has been closed."))
}

func handleSwitchTab(_ context.Context, req *Request) *Outcome {
	q := strings.TrimSpace(req.Intent.Query)
	n, err := strconv.Atoi(q)
	if err != nil {
		return Say("Please provide a valid tab number.")
	}
	if err := req.State.SwitchTab(n); err != nil {
		return Say("I'm afraid that tab number is out of range.")
	}
	return Confirm("switch_tab", confirmMessage(req.Intent, fmt.Sprintf("Switched to tab %d.", n)))
}

func handleReopenTab(_ context.Context, req *Request) *Outcome {
	tab, ok, err := req.State.ReopenLastClosed()
	if !ok {
		return Say("There are no recently closed tabs to reopen.")
	}
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the tab could not be reopened: %v", err))
	}
	return Confirm("reopen_tab", confirmMessage(req.Intent, fmt.Sprintf("Reopened %s for you.", tab.Address)))
}

// handleNewWindow is delegated to the surrounding shell: the core owns
// one window's session, so it only reports the request as an effect.
func handleNewWindow(_ context.Context, req *Request) *Outcome {
	return Confirm("new_window", confirmMessage(req.Intent, "Opening a new browser window."))
}
