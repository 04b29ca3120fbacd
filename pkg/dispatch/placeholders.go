package dispatch

import (
	"context"

	"github.com/stenoip/ringzauber/pkg/intent"
)

// Placeholder commands succeed at the protocol level with a fixed
// message and perform no state mutation. This is a deliberate contract
// for vocabulary members with no real backing yet, not an error path.
var placeholderMessages = map[intent.Command]string{
	intent.CommandManageExtensions: "I am afraid I cannot manage extensions at this moment, as this feature is still under development.",
	intent.CommandSyncData:         "Data synchronization is not yet implemented. Please check for a future update.",
	intent.CommandChangeSettings:   "Current settings cannot be changed via command. A settings menu will be implemented in a future update.",
	intent.CommandBookmarkPage:     "The bookmarking feature is not yet available, my apologies. I will remember this for a future update.",
	intent.CommandResizeWindow:     "I can't resize the window automatically just yet. You may do so by dragging the edges.",
	intent.CommandEditCode:         "Editing code is not enabled in this version.",
	intent.CommandDeveloperTools:   "The developer tools are not available in this rendering mode just yet.",
}

func registerPlaceholderHandlers(table map[intent.Command]Handler) {
	for cmd, msg := range placeholderMessages {
		table[cmd] = placeholderHandler(msg)
	}
}

func placeholderHandler(message string) Handler {
	return func(_ context.Context, _ *Request) *Outcome {
		return Say(message)
	}
}

// PlaceholderMessage returns the fixed response for a placeholder
// command, and whether cmd is one.
func PlaceholderMessage(cmd intent.Command) (string, bool) {
	msg, ok := placeholderMessages[cmd]
	return msg, ok
}
