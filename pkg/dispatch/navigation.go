package dispatch

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/stenoip/ringzauber/pkg/browser"
	"github.com/stenoip/ringzauber/pkg/intent"
)

// crawlContentLimit bounds the cleaned page text handed to the
// secondary translator call.
const crawlContentLimit = 5000

func registerNavigationHandlers(table map[intent.Command]Handler) {
	table[intent.CommandNavigate] = handleNavigate
	table[intent.CommandSearch] = handleSearch
	table[intent.CommandCrawlSite] = handleCrawlSite
	table[intent.CommandTranslatePage] = handleTranslatePage
}

func handleNavigate(_ context.Context, req *Request) *Outcome {
	url := strings.TrimSpace(req.Intent.Query)
	if url == "" {
		return Say("I would be happy to navigate somewhere; where would you like to go?")
	}
	if !req.State.Policy().Allow(url) {
		return Say(fmt.Sprintf("I'm afraid %s is on your blocked list, so I shall not open it.", url))
	}
	if _, err := req.State.OpenTab(url); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, I could not open %s: %v", url, err))
	}
	return Confirm("navigate", confirmMessage(req.Intent, fmt.Sprintf("Navigating to %s.", url)))
}

func handleSearch(_ context.Context, req *Request) *Outcome {
	terms := strings.TrimSpace(req.Intent.Query)
	if terms == "" {
		return Say("What would you like me to search for?")
	}
	url := req.State.SearchURL(terms)
	if !req.State.Policy().Allow(url) {
		return Say("I'm afraid your search engine is on your blocked list.")
	}
	if _, err := req.State.OpenTab(url); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the search could not be opened: %v", err))
	}
	return Confirm("search", confirmMessage(req.Intent, fmt.Sprintf("Searching for %q.", terms)))
}

// handleCrawlSite is the one command that chains two translator calls:
// the page content is extracted, cleaned, bounded, and summarized by an
// independent plain-mode request whose result is what the user sees.
func handleCrawlSite(ctx context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}

	raw, err := tab.Handle.Content()
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, I could not read the page: %v", err))
	}

	page, err := browser.CleanHTML(raw, crawlContentLimit)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the page content could not be processed: %v", err))
	}

	prompt := fmt.Sprintf(
		"Oodles has crawled the following content from %s. Please summarize what you see, and describe the website's purpose. The content is:\n\n%s",
		tab.Address, page.Text)

	summary, err := req.Translator.Plain(ctx, prompt)
	if err != nil {
		return Apology(fmt.Sprintf("I'm sorry, Oodles could not summarize the site: %v", err))
	}
	return Confirm("crawl", summary)
}

// languageCodePattern accepts BCP 47-ish target language codes.
var languageCodePattern = regexp.MustCompile(`^[a-zA-Z]{2,8}(-[a-zA-Z0-9]{1,8})*$`)

func handleTranslatePage(_ context.Context, req *Request) *Outcome {
	tab, err := req.State.ActiveTab()
	if err != nil {
		return noActiveTab()
	}

	lang := strings.TrimSpace(req.Intent.Query)
	if lang == "" || !languageCodePattern.MatchString(lang) {
		return Say("Please tell me which language to translate the page into, as a language code such as \"de\" or \"fr\".")
	}

	script := fmt.Sprintf(
		"window.open('https://translate.google.com/?sl=auto&tl=%s&text=' + encodeURIComponent(document.body.innerText), '_blank');",
		lang)
	if _, err := tab.Handle.RunScript(script); err != nil {
		return Apology(fmt.Sprintf("I'm sorry, the translation could not be started: %v", err))
	}
	return Confirm("translate_page", confirmMessage(req.Intent, fmt.Sprintf("Translating the page into %s.", lang)))
}

// confirmMessage prefers the translator's own confirmation text over
// the dispatcher's fallback.
func confirmMessage(in *intent.Intent, fallback string) string {
	if strings.TrimSpace(in.Message) != "" {
		return in.Message
	}
	return fallback
}
