package session

import (
	"github.com/google/uuid"
)

// TabHandle is the primitive surface a live tab exposes. The playwright
// implementation lives in pkg/browser; tests use in-memory fakes.
type TabHandle interface {
	// Navigate loads the given URL in the tab.
	Navigate(url string) error

	// Reload reloads the current page.
	Reload() error

	// Back navigates back in the tab's history.
	Back() error

	// Forward navigates forward in the tab's history.
	Forward() error

	// SetZoom applies a zoom factor (1.0 is normal size).
	SetZoom(factor float64) error

	// RunScript executes JavaScript in the page and returns its result
	// rendered as text.
	RunScript(source string) (string, error)

	// FindText searches the rendered page for needle and returns the
	// number of matches.
	FindText(needle string) (int, error)

	// Content returns the rendered page content (HTML).
	Content() (string, error)

	// PrintToPDF writes the page to a PDF at path and returns the page
	// count of the produced document.
	PrintToPDF(path string) (int, error)

	// Title returns the current page title.
	Title() (string, error)

	// URL returns the tab's current address.
	URL() string

	// Close releases the tab's resources.
	Close() error
}

// TabOpener creates live tabs. The playwright manager implements it.
type TabOpener interface {
	OpenTab(url string) (TabHandle, error)
}

// Tab is one open tab in the session: a live handle plus the state the
// session tracks for it.
type Tab struct {
	// ID uniquely identifies the tab for the session's lifetime.
	ID uuid.UUID

	// Handle drives the underlying page.
	Handle TabHandle

	// Address is the last address the session navigated the tab to.
	Address string

	// Zoom is the tab's current zoom factor.
	Zoom float64
}

// ClosedTab is the snapshot pushed onto the closed-tab history when a
// tab closes, enough to reopen it at its last address.
type ClosedTab struct {
	Address string
	Title   string
}
