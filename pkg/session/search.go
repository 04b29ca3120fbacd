package session

import (
	"net/url"
	"strings"
)

// Engine identifies a supported search engine.
type Engine string

const (
	EngineGoogle     Engine = "google"
	EngineDuckDuckGo Engine = "duckduckgo"
	EngineYahoo      Engine = "yahoo"
	EngineEcosia     Engine = "ecosia"
)

// queryPrefixes maps each engine to its search URL prefix.
var queryPrefixes = map[Engine]string{
	EngineGoogle:     "https://www.google.com/search?q=",
	EngineDuckDuckGo: "https://duckduckgo.com/?q=",
	EngineYahoo:      "https://search.yahoo.com/search?p=",
	EngineEcosia:     "https://www.ecosia.org/search?q=",
}

// LookupEngine resolves an engine name, case-insensitively, and
// reports whether it is supported.
func LookupEngine(name string) (Engine, bool) {
	e := Engine(strings.ToLower(strings.TrimSpace(name)))
	_, ok := queryPrefixes[e]
	return e, ok
}

// ParseEngine resolves a configured engine name, case-insensitively.
// Unrecognized or empty names fall back to Google.
func ParseEngine(name string) Engine {
	e := Engine(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := queryPrefixes[e]; ok {
		return e
	}
	return EngineGoogle
}

// SearchURL builds the engine's query URL for the given search terms.
func (e Engine) SearchURL(terms string) string {
	prefix, ok := queryPrefixes[e]
	if !ok {
		prefix = queryPrefixes[EngineGoogle]
	}
	return prefix + url.QueryEscape(terms)
}
