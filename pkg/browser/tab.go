package browser

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/playwright-community/playwright-go"
)

// Tab wraps a Playwright page as a session.TabHandle.
type Tab struct {
	page    playwright.Page
	onClose func()
	closed  bool
}

// Navigate loads the given URL.
func (t *Tab) Navigate(url string) error {
	if _, err := t.page.Goto(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// Reload reloads the current page.
func (t *Tab) Reload() error {
	if _, err := t.page.Reload(); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

// Back navigates back in history. Having no earlier entry is not an
// error; the page simply stays put.
func (t *Tab) Back() error {
	if _, err := t.page.GoBack(); err != nil {
		return fmt.Errorf("back navigation failed: %w", err)
	}
	return nil
}

// Forward navigates forward in history.
func (t *Tab) Forward() error {
	if _, err := t.page.GoForward(); err != nil {
		return fmt.Errorf("forward navigation failed: %w", err)
	}
	return nil
}

// SetZoom applies a CSS zoom factor to the page body.
func (t *Tab) SetZoom(factor float64) error {
	script := fmt.Sprintf("document.body.style.zoom = %.2f", factor)
	if _, err := t.page.Evaluate(script); err != nil {
		return fmt.Errorf("zoom failed: %w", err)
	}
	return nil
}

// RunScript executes JavaScript in the page and renders its result as text.
func (t *Tab) RunScript(source string) (string, error) {
	result, err := t.page.Evaluate(source)
	if err != nil {
		return "", fmt.Errorf("script execution failed: %w", err)
	}
	if result == nil {
		return "", nil
	}
	return fmt.Sprintf("%v", result), nil
}

// findScript counts occurrences of a needle in the page's visible text.
const findScript = `(needle) => {
	if (!needle) return 0;
	const text = document.body ? document.body.innerText : "";
	return text.split(needle).length - 1;
}`

// FindText returns the number of occurrences of needle in the rendered
// page text.
func (t *Tab) FindText(needle string) (int, error) {
	result, err := t.page.Evaluate(findScript, needle)
	if err != nil {
		return 0, fmt.Errorf("find failed: %w", err)
	}
	switch n := result.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("find returned unexpected result %T", result)
	}
}

// Content returns the rendered page HTML.
func (t *Tab) Content() (string, error) {
	content, err := t.page.Content()
	if err != nil {
		return "", fmt.Errorf("content extraction failed: %w", err)
	}
	return content, nil
}

// PrintToPDF writes the page to a PDF at path and returns the verified
// page count of the produced document.
func (t *Tab) PrintToPDF(path string) (int, error) {
	if _, err := t.page.PDF(playwright.PagePdfOptions{
		Path: playwright.String(path),
	}); err != nil {
		return 0, fmt.Errorf("pdf export failed: %w", err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdf written but unreadable: %w", err)
	}
	return pages, nil
}

// Title returns the current page title.
func (t *Tab) Title() (string, error) {
	title, err := t.page.Title()
	if err != nil {
		return "", fmt.Errorf("title read failed: %w", err)
	}
	return title, nil
}

// URL returns the tab's current address.
func (t *Tab) URL() string {
	return t.page.URL()
}

// Close releases the page.
func (t *Tab) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.onClose != nil {
		t.onClose()
	}
	if err := t.page.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}
