package dispatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stenoip/ringzauber/pkg/intent"
)

// Zoom bounds keep the page readable.
const (
	zoomStep = 0.1
	zoomMin  = 0.25
	zoomMax  = 5.0
)

func registerPageHandlers(table map[intent.Command]Handler) {
	table[intent.CommandReload] = handleReload
	table[intent.CommandGoBack] = handleGoBack
	table[intent.CommandGoForward] = handleGoForward
	table[intent.CommandZoomIn] = handleZoom(zoomStep)
	table[intent.CommandZoomOut] = handleZoom(-zoomStep)
	table[intent.CommandFindOnPage] = handleFindOnPage
	table[intent.CommandEditPage] = handleEditPage
	table[intent.CommandPrintToPDF] = handlePrintToPDF
}

func handleReload(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}
	if err := tab.Handle.Reload(); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the page could not be reloaded: %v", err))
	}
	return Confirm("reload", confirmMessage(req.Intent, "Reloading the page."))
}

func handleGoBack(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}
	if err := tab.Handle.Back(); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, I could not go back: %v", err))
	}
	return Confirm("back", confirmMessage(req.Intent, "Going back."))
}

func handleGoForward(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}
	if err := tab.Handle.Forward(); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, I could not go forward: %v", err))
	}
	return Confirm("forward", confirmMessage(req.Intent, "Going forward."))
}

func handleZoom(step float64) Handler {
	return func(_ context.Context, req *Request) *Outcome {
		tab, err := req.State.ActiveTab()
		if err != nil {
			return noActiveTab()
		}

		factor := tab.Zoom + step
		if factor < zoomMin {
			factor = zoomMin
		}
		if factor > zoomMax {
			factor = zoomMax
		}

		if err := tab.Handle.SetZoom(factor); err != nil {
			return Apology(fmt.Sprintf("I'm sorry, the zoom could not be changed: %v", err))
		}
		tab.Zoom = factor

		effect := "zoom_in"
		if step < 0 {
			effect = "zoom_out"
		}
		return Confirm(effect, confirmMessage(req.Intent, fmt.Sprintf("Zoom is now %.0f%%.", factor*100)))
	}
}

func handleFindOnPage(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}

	needle := strings.TrimSpace(req.Intent.Query)
	if needle == "" {
		return Say("What text shall I look for on the page?")
	}

	count, err := tab.Handle.FindText(needle)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the search on the page failed: %v", err))
	}
	if count == 0 {
		return Confirm("find", fmt.Sprintf("I could not find %q on this page.", needle))
	}
	return Confirm("find", fmt.Sprintf("I found %d occurrence(s) of %q on this page.", count, needle))
}

func handleEditPage(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}

	script := strings.TrimSpace(req.Intent.Query)
	if script == "" {
		return Say("Please tell me what JavaScript you would like me to run on the page.")
	}

	result, err := tab.Handle.RunScript(script)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the script could not be executed: %v", err))
	}

	msg := confirmMessage(req.Intent, "The page has been updated.")
	if result != "" {
		msg = fmt.Sprintf("%s The script returned: %s", msg, result)
	}
	return &Outcome{Effect: "edit_page", Message: msg, Script: script}
}

func handlePrintToPDF(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}

	path := filepath.Join(req.PDFDir, fmt.Sprintf("ringzauber-%s.pdf", uuid.New().String()[:8]))
	pages, err := tab.Handle.PrintToPDF(path)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the page could not be saved as a PDF: %v", err))
	}
	return Confirm("print_to_pdf", fmt.Sprintf("Saved the page as a %d-page PDF at %s.", pages, path))
}
