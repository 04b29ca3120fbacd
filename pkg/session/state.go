// Package session holds the authoritative in-memory model of one
// browser window: open tabs, the active tab, recently-closed history,
// and chrome state. The state is owned by the interactive flow and
// mutated only there; worker results are marshaled back to that flow
// before they touch it, so no internal locking is used.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ClosedTabLimit bounds the closed-tab history stack.
const ClosedTabLimit = 25

// DefaultHomeURL is where new tabs open when no address is given.
const DefaultHomeURL = "about:blank"

// TabLayout enumerates the tab strip arrangements.
type TabLayout string

const (
	LayoutHorizontal TabLayout = "horizontal"
	LayoutVertical   TabLayout = "vertical"
)

// ErrNoActiveTab is returned by operations that require an open tab
// when the session has none.
var ErrNoActiveTab = errors.New("no active tab")

// ErrTabOutOfRange is returned by SwitchTab for indexes outside the
// open-tab range.
var ErrTabOutOfRange = errors.New("tab number out of range")

// Chrome is the window chrome state. All fields are independent and
// idempotently settable.
type Chrome struct {
	SidebarVisible bool
	NotesVisible   bool
	Layout         TabLayout
	ThemeColor     string
	FontStyle      string
}

// Config configures a new session state.
type Config struct {
	// Opener creates live tabs. Required.
	Opener TabOpener

	// HomeURL is the address new tabs open at. Defaults to DefaultHomeURL.
	HomeURL string

	// Engine is the default search engine.
	Engine Engine

	// Policy is the navigation blocklist. Nil allows everything.
	Policy *Policy
}

// State is the live model of one browser window.
type State struct {
	tabs    []*Tab
	active  int
	closed  []ClosedTab
	chrome  Chrome
	opener  TabOpener
	homeURL string
	engine  Engine
	policy  *Policy
}

// New creates an empty session state. No tab is opened; the shell opens
// the first tab explicitly.
func New(cfg Config) (*State, error) {
	if cfg.Opener == nil {
		return nil, fmt.Errorf("session opener is required")
	}
	home := cfg.HomeURL
	if home == "" {
		home = DefaultHomeURL
	}
	engine := cfg.Engine
	if engine == "" {
		engine = EngineGoogle
	}
	return &State{
		tabs:    nil,
		active:  -1,
		opener:  cfg.Opener,
		homeURL: home,
		engine:  engine,
		policy:  cfg.Policy,
		chrome:  Chrome{Layout: LayoutHorizontal},
	}, nil
}

// HomeURL returns the address new tabs open at.
func (s *State) HomeURL() string { return s.homeURL }

// Engine returns the default search engine.
func (s *State) Engine() Engine { return s.engine }

// Policy returns the navigation policy.
func (s *State) Policy() *Policy { return s.policy }

// SearchURL builds a query URL for the default engine.
func (s *State) SearchURL(terms string) string {
	return s.engine.SearchURL(terms)
}

// TabCount returns the number of open tabs.
func (s *State) TabCount() int { return len(s.tabs) }

// Tabs returns the open tabs in display order.
func (s *State) Tabs() []*Tab {
	out := make([]*Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// ActiveIndex returns the zero-based active tab index, or -1 when no
// tab is open.
func (s *State) ActiveIndex() int { return s.active }

// ActiveTab returns the active tab, or ErrNoActiveTab.
func (s *State) ActiveTab() (*Tab, error) {
	if s.active < 0 || s.active >= len(s.tabs) {
		return nil, ErrNoActiveTab
	}
	return s.tabs[s.active], nil
}

// OpenTab opens a new tab at the given address (the home URL when
// empty), appends it in display order, and makes it active.
func (s *State) OpenTab(url string) (*Tab, error) {
	if url == "" {
		url = s.homeURL
	}
	handle, err := s.opener.OpenTab(url)
	if err != nil {
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	tab := &Tab{
		ID:      uuid.New(),
		Handle:  handle,
		Address: url,
		Zoom:    1.0,
	}
	s.tabs = append(s.tabs, tab)
	s.active = len(s.tabs) - 1
	return tab, nil
}

// CloseTab closes the tab at index i. Closing the last remaining tab
// ends the session: the tab is closed, ended is true, and no snapshot
// is recorded. Otherwise the closed tab's snapshot is pushed onto the
// closed-tab history, the remaining tabs keep their relative order, and
// the active index is clamped to a valid tab.
func (s *State) CloseTab(i int) (ended bool, err error) {
	if i < 0 || i >= len(s.tabs) {
		return false, ErrTabOutOfRange
	}

	tab := s.tabs[i]
	if len(s.tabs) == 1 {
		_ = tab.Handle.Close()
		s.tabs = nil
		s.active = -1
		return true, nil
	}

	title, _ := tab.Handle.Title()
	s.pushClosed(ClosedTab{Address: tab.Address, Title: title})
	_ = tab.Handle.Close()

	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
	if s.active >= len(s.tabs) {
		s.active = len(s.tabs) - 1
	} else if s.active > i {
		s.active--
	}
	return false, nil
}

// CloseActive closes the active tab.
func (s *State) CloseActive() (bool, error) {
	if s.active < 0 {
		return false, ErrNoActiveTab
	}
	return s.CloseTab(s.active)
}

// SwitchTab activates the tab with the given 1-based number.
func (s *State) SwitchTab(oneBased int) error {
	i := oneBased - 1
	if i < 0 || i >= len(s.tabs) {
		return ErrTabOutOfRange
	}
	s.active = i
	return nil
}

// NextTab activates the next tab, wrapping around.
func (s *State) NextTab() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.tabs)
}

// PrevTab activates the previous tab, wrapping around.
func (s *State) PrevTab() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// pushClosed records a snapshot, dropping the oldest entry past the cap.
func (s *State) pushClosed(ct ClosedTab) {
	s.closed = append(s.closed, ct)
	if len(s.closed) > ClosedTabLimit {
		s.closed = s.closed[len(s.closed)-ClosedTabLimit:]
	}
}

// ClosedCount returns the number of reopenable closed tabs.
func (s *State) ClosedCount() int { return len(s.closed) }

// ReopenLastClosed pops the most recent closed-tab snapshot and reopens
// a tab at its address. ok is false when the history is empty, a valid,
// reportable state.
func (s *State) ReopenLastClosed() (*Tab, bool, error) {
	if len(s.closed) == 0 {
		return nil, false, nil
	}
	last := s.closed[len(s.closed)-1]
	s.closed = s.closed[:len(s.closed)-1]

	tab, err := s.OpenTab(last.Address)
	if err != nil {
		// Restore the snapshot so the user can retry.
		s.closed = append(s.closed, last)
		return nil, true, err
	}
	return tab, true, nil
}

// Chrome returns the current chrome state.
func (s *State) Chrome() Chrome { return s.chrome }

// SetThemeColor sets the chrome theme color.
func (s *State) SetThemeColor(color string) { s.chrome.ThemeColor = color }

// SetFontStyle sets the chrome font override.
func (s *State) SetFontStyle(style string) { s.chrome.FontStyle = style }

// ToggleSidebar flips sidebar visibility and returns the new state.
func (s *State) ToggleSidebar() bool {
	s.chrome.SidebarVisible = !s.chrome.SidebarVisible
	return s.chrome.SidebarVisible
}

// ShowNotes makes the notes panel visible.
func (s *State) ShowNotes() { s.chrome.NotesVisible = true }

// SetLayout sets the tab strip layout.
func (s *State) SetLayout(layout TabLayout) { s.chrome.Layout = layout }
