// Package browser provides the Playwright-backed tab primitive surface
// the dispatcher drives. One Manager owns the browser process and its
// context; each open tab is a page wrapped in a Tab.
package browser

import (
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/stenoip/ringzauber/pkg/session"
)

// Default limits for a managed browser.
const (
	DefaultMaxTabs        = 50
	DefaultTimeout        = 30000.0 // milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Options configures a Manager.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// MaxTabs caps the number of concurrently open tabs.
	MaxTabs int

	// Timeout is the default operation timeout in milliseconds.
	Timeout float64
}

// Manager owns the Playwright lifecycle and opens tabs. It satisfies
// session.TabOpener.
type Manager struct {
	mu          sync.Mutex
	playwright  *playwright.Playwright
	browser     playwright.Browser
	context     playwright.BrowserContext
	opts        Options
	openTabs    int
	initialized bool
}

// NewManager creates an uninitialized manager.
func NewManager(opts Options) *Manager {
	if opts.MaxTabs <= 0 {
		opts.MaxTabs = DefaultMaxTabs
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Manager{opts: opts}
}

// Initialize installs and starts Playwright and launches the browser.
// Must be called before opening tabs.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Discard driver output so it cannot interfere with the terminal surface.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &m.opts.Headless,
	})
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return fmt.Errorf("failed to create browser context: %w", err)
	}

	m.playwright = pw
	m.browser = browser
	m.context = context
	m.initialized = true
	return nil
}

// OpenTab opens a new page at the given URL and returns its handle.
func (m *Manager) OpenTab(url string) (session.TabHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, fmt.Errorf("browser manager not initialized")
	}
	if m.openTabs >= m.opts.MaxTabs {
		return nil, fmt.Errorf("maximum number of tabs (%d) reached", m.opts.MaxTabs)
	}

	page, err := m.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(m.opts.Timeout)

	if url != "" {
		if _, err := page.Goto(url); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("failed to open %s: %w", url, err)
		}
	}

	m.openTabs++
	return &Tab{page: page, onClose: m.tabClosed}, nil
}

// tabClosed is called by a Tab when it closes.
func (m *Manager) tabClosed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.openTabs > 0 {
		m.openTabs--
	}
}

// OpenTabCount returns the number of tabs currently open.
func (m *Manager) OpenTabCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openTabs
}

// Shutdown closes the browser and stops Playwright.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil
	}

	_ = m.context.Close()
	_ = m.browser.Close()
	if err := m.playwright.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	m.initialized = false
	return nil
}
