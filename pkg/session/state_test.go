package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandle is an in-memory TabHandle for tests.
type fakeHandle struct {
	address string
	title   string
	zoom    float64
	closed  bool
}

func (f *fakeHandle) Navigate(url string) error { f.address = url; return nil }
func (f *fakeHandle) Reload() error             { return nil }
func (f *fakeHandle) Back() error               { return nil }
func (f *fakeHandle) Forward() error            { return nil }
func (f *fakeHandle) SetZoom(factor float64) error {
	f.zoom = factor
	return nil
}
func (f *fakeHandle) RunScript(string) (string, error)  { return "", nil }
func (f *fakeHandle) FindText(string) (int, error)      { return 0, nil }
func (f *fakeHandle) Content() (string, error)          { return "<html></html>", nil }
func (f *fakeHandle) PrintToPDF(string) (int, error)    { return 1, nil }
func (f *fakeHandle) Title() (string, error)            { return f.title, nil }
func (f *fakeHandle) URL() string                       { return f.address }
func (f *fakeHandle) Close() error                      { f.closed = true; return nil }

// fakeOpener creates fakeHandles and records how many it opened.
type fakeOpener struct {
	opened  []*fakeHandle
	failing bool
}

func (f *fakeOpener) OpenTab(url string) (TabHandle, error) {
	if f.failing {
		return nil, fmt.Errorf("browser unavailable")
	}
	h := &fakeHandle{address: url, title: "New Tab"}
	f.opened = append(f.opened, h)
	return h, nil
}

func newTestState(t *testing.T) (*State, *fakeOpener) {
	t.Helper()
	opener := &fakeOpener{}
	st, err := New(Config{Opener: opener, HomeURL: "https://start.example"})
	require.NoError(t, err)
	return st, opener
}

func TestOpenTabActivatesLast(t *testing.T) {
	st, _ := newTestState(t)

	_, err := st.OpenTab("https://a.example")
	require.NoError(t, err)
	_, err = st.OpenTab("https://b.example")
	require.NoError(t, err)

	assert.Equal(t, 2, st.TabCount())
	assert.Equal(t, 1, st.ActiveIndex())

	active, err := st.ActiveTab()
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", active.Address)
}

func TestOpenTabEmptyURLUsesHome(t *testing.T) {
	st, _ := newTestState(t)

	tab, err := st.OpenTab("")
	require.NoError(t, err)
	assert.Equal(t, "https://start.example", tab.Address)
}

func TestActiveTabWhenEmpty(t *testing.T) {
	st, _ := newTestState(t)

	_, err := st.ActiveTab()
	assert.ErrorIs(t, err, ErrNoActiveTab)
}

func TestCloseTabLastTabEndsSession(t *testing.T) {
	st, opener := newTestState(t)
	_, err := st.OpenTab("https://only.example")
	require.NoError(t, err)

	ended, err := st.CloseActive()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Equal(t, 0, st.TabCount())
	assert.True(t, opener.opened[0].closed)
	// Session-ending close records no snapshot.
	assert.Equal(t, 0, st.ClosedCount())
}

func TestCloseTabPreservesOrderAndSnapshots(t *testing.T) {
	st, _ := newTestState(t)
	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		_, err := st.OpenTab(u)
		require.NoError(t, err)
	}

	ended, err := st.CloseTab(1)
	require.NoError(t, err)
	assert.False(t, ended)

	tabs := st.Tabs()
	require.Len(t, tabs, 2)
	assert.Equal(t, "https://a.example", tabs[0].Address)
	assert.Equal(t, "https://c.example", tabs[1].Address)
	assert.Equal(t, 1, st.ClosedCount())

	// The active index stays on the same tab (c was active at index 2,
	// now at index 1).
	active, err := st.ActiveTab()
	require.NoError(t, err)
	assert.Equal(t, "https://c.example", active.Address)
}

func TestReopenLastClosed(t *testing.T) {
	st, _ := newTestState(t)
	for _, u := range []string{"https://a.example", "https://b.example"} {
		_, err := st.OpenTab(u)
		require.NoError(t, err)
	}

	_, err := st.CloseTab(1)
	require.NoError(t, err)

	tab, ok, err := st.ReopenLastClosed()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://b.example", tab.Address)
	assert.Equal(t, 0, st.ClosedCount())
}

func TestReopenWithEmptyHistory(t *testing.T) {
	st, _ := newTestState(t)

	tab, ok, err := st.ReopenLastClosed()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, tab)
}

func TestClosedHistoryBounded(t *testing.T) {
	st, _ := newTestState(t)
	// Keep one anchor tab open so closes never end the session.
	_, err := st.OpenTab("https://anchor.example")
	require.NoError(t, err)

	for i := 0; i < ClosedTabLimit+10; i++ {
		_, err := st.OpenTab(fmt.Sprintf("https://t%d.example", i))
		require.NoError(t, err)
		_, err = st.CloseTab(st.ActiveIndex())
		require.NoError(t, err)
	}

	assert.Equal(t, ClosedTabLimit, st.ClosedCount())
}

func TestSwitchTab(t *testing.T) {
	st, _ := newTestState(t)
	for i := 0; i < 2; i++ {
		_, err := st.OpenTab("")
		require.NoError(t, err)
	}

	require.NoError(t, st.SwitchTab(1))
	assert.Equal(t, 0, st.ActiveIndex())

	err := st.SwitchTab(99)
	assert.ErrorIs(t, err, ErrTabOutOfRange)
	assert.Equal(t, 0, st.ActiveIndex(), "failed switch leaves active index unchanged")

	err = st.SwitchTab(0)
	assert.ErrorIs(t, err, ErrTabOutOfRange)
}

func TestNextPrevTabWrap(t *testing.T) {
	st, _ := newTestState(t)
	for i := 0; i < 3; i++ {
		_, err := st.OpenTab("")
		require.NoError(t, err)
	}

	st.NextTab()
	assert.Equal(t, 0, st.ActiveIndex())
	st.PrevTab()
	assert.Equal(t, 2, st.ActiveIndex())
}

func TestChromeState(t *testing.T) {
	st, _ := newTestState(t)

	assert.Equal(t, LayoutHorizontal, st.Chrome().Layout)
	st.SetLayout(LayoutVertical)
	assert.Equal(t, LayoutVertical, st.Chrome().Layout)

	st.SetThemeColor("red")
	st.SetFontStyle("font-family: 'Roboto';")
	assert.Equal(t, "red", st.Chrome().ThemeColor)

	assert.True(t, st.ToggleSidebar())
	assert.False(t, st.ToggleSidebar())
}

func TestOpenTabFailure(t *testing.T) {
	opener := &fakeOpener{failing: true}
	st, err := New(Config{Opener: opener})
	require.NoError(t, err)

	_, err = st.OpenTab("https://a.example")
	assert.Error(t, err)
	assert.Equal(t, 0, st.TabCount())
}
