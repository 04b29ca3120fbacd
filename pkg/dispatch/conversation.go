package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/stenoip/ringzauber/pkg/intent"
)

func registerConversationHandlers(table map[intent.Command]Handler) {
	table[intent.CommandNone] = handleNone
	table[intent.CommandPrompt] = handlePrompt
	table[intent.CommandNewChat] = handleNewChat
	table[intent.CommandProcessText] = handleProcessText
	table[intent.CommandUploadFile] = handleUploadFile
	table[intent.CommandPromptDisplay] = handlePromptDisplay
}

func handleNone(_ context.Context, req *Request) *Outcome {
	return Say(confirmMessage(req.Intent, "Very well."))
}

// handlePrompt displays a follow-up question carried in the query.
func handlePrompt(_ context.Context, req *Request) *Outcome {
	if q := strings.TrimSpace(req.Intent.Query); q != "" {
		return Say(q)
	}
	return Say(confirmMessage(req.Intent, "Could you tell me a little more about what you need?"))
}

func handleNewChat(_ context.Context, req *Request) *Outcome {
	return &Outcome{
		Effect:    "new_chat",
		Message:   confirmMessage(req.Intent, "Starting a fresh conversation."),
		ClearChat: true,
	}
}

// handleProcessText chains a plain-mode translator call over the
// highlighted text and question carried in the query.
func handleProcessText(ctx context.Context, req *Request) *Outcome {
	composite := strings.TrimSpace(req.Intent.Query)
	if composite == "" {
		return Say("Please highlight some text and ask me a question about it.")
	}

	answer, err := req.Translator.Plain(ctx, composite)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, an error occurred while processing your text: %v", err))
	}
	return Confirm("process_text", answer)
}

func handleUploadFile(_ context.Context, req *Request) *Outcome {
	path := strings.TrimSpace(req.Intent.Query)
	if path == "" {
		return Say("Which file would you like to upload?")
	}
	return Confirm("upload_file", fmt.Sprintf("Understood. I will process the file located at: %s", path))
}

// handlePromptDisplay routes its compound payload to the landing-page
// display surface; the generic message field (empty for this command)
// is not what gets shown.
func handlePromptDisplay(_ context.Context, req *Request) *Outcome {
	payload, err := req.Intent.PromptDisplay()
	if err != nil {
		return Apology("I'm sorry, the display payload was malformed, so I cannot show it.")
	}
	return &Outcome{
		Effect:  "prompt_display",
		Message: payload.PraterichResponse,
		Display: payload,
	}
}
