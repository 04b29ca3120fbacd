package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Engine
	}{
		{"google", "google", EngineGoogle},
		{"case insensitive", "DuckDuckGo", EngineDuckDuckGo},
		{"yahoo", "yahoo", EngineYahoo},
		{"ecosia", "Ecosia", EngineEcosia},
		{"whitespace", "  google  ", EngineGoogle},
		{"unknown falls back", "altavista", EngineGoogle},
		{"empty falls back", "", EngineGoogle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEngine(tt.in))
		})
	}
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=capital+of+France",
		EngineGoogle.SearchURL("capital of France"))

	assert.Equal(t,
		"https://duckduckgo.com/?q=b%C3%A4ren",
		EngineDuckDuckGo.SearchURL("bären"))
}

func TestPolicy(t *testing.T) {
	t.Run("empty allows all", func(t *testing.T) {
		p, err := NewPolicy(nil)
		assert.NoError(t, err)
		assert.True(t, p.Allow("https://anything.example"))
	})

	t.Run("nil allows all", func(t *testing.T) {
		var p *Policy
		assert.True(t, p.Allow("https://anything.example"))
	})

	t.Run("blocked pattern", func(t *testing.T) {
		p, err := NewPolicy([]string{"*tracker.example*"})
		assert.NoError(t, err)
		assert.False(t, p.Allow("https://tracker.example/pixel"))
		assert.True(t, p.Allow("https://news.example"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewPolicy([]string{"[unclosed"})
		assert.Error(t, err)
	})
}
