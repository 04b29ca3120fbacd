// Package intent defines the command vocabulary shared between the
// translator and the dispatcher, the Intent envelope the translator
// produces, and the parser that validates raw translator output.
//
// The vocabulary is modeled once, as a table of command specs. The
// instruction document advertised to the translator and the dispatcher's
// handler table are both derived from that table, so the advertised
// contract and the executable contract cannot drift.
package intent

import (
	"fmt"
	"strings"
)

// Command is the tag of a browser action in the closed vocabulary.
type Command string

const (
	CommandNavigate            Command = "NAVIGATE"
	CommandSearch              Command = "SEARCH"
	CommandNone                Command = "NONE"
	CommandPrompt              Command = "PROMPT"
	CommandNewTab              Command = "NEW_TAB"
	CommandCloseTab            Command = "CLOSE_TAB"
	CommandReload              Command = "RELOAD"
	CommandGoBack              Command = "GO_BACK"
	CommandGoForward           Command = "GO_FORWARD"
	CommandSetColor            Command = "SET_COLOR"
	CommandEditPage            Command = "EDIT_PAGE"
	CommandNewWindow           Command = "NEW_WINDOW"
	CommandEditCode            Command = "EDIT_CODE"
	CommandSetFont             Command = "SET_FONT"
	CommandUploadFile          Command = "UPLOAD_FILE"
	CommandToggleSidebar       Command = "TOGGLE_SIDEBAR"
	CommandProcessText         Command = "PROCESS_TEXT"
	CommandManageExtensions    Command = "MANAGE_EXTENSIONS"
	CommandSyncData            Command = "SYNC_DATA"
	CommandTranslatePage       Command = "TRANSLATE_PAGE"
	CommandChangeSettings      Command = "CHANGE_SETTINGS"
	CommandDeveloperTools      Command = "DEVELOPER_TOOLS"
	CommandZoomIn              Command = "ZOOM_IN"
	CommandZoomOut             Command = "ZOOM_OUT"
	CommandFindOnPage          Command = "FIND_ON_PAGE"
	CommandPrintToPDF          Command = "PRINT_TO_PDF"
	CommandBookmarkPage        Command = "BOOKMARK_PAGE"
	CommandSwitchTab           Command = "SWITCH_TAB"
	CommandResizeWindow        Command = "RESIZE_WINDOW"
	CommandNewChat             Command = "NEW_CHAT"
	CommandCrawlSite           Command = "CRAWL_SITE"
	CommandTabFormatVertical   Command = "TAB_FORMAT_VERTICAL"
	CommandTabFormatHorizontal Command = "TAB_FORMAT_HORIZONTAL_MULTIROW"
	CommandOpenNotes           Command = "OPEN_NOTES"
	CommandReopenTab           Command = "REOPEN_TAB"
	CommandPromptDisplay       Command = "PROMPT_DISPLAY"
)

// legacyAliases maps historical tag spellings still produced by older
// instruction documents to their canonical commands.
var legacyAliases = map[string]Command{
	"TAB_FORMAT_HORIZONTAL_MULTIROWE": CommandTabFormatHorizontal,
}

// Spec describes one vocabulary member: its tag, the contract for its
// query payload, and an optional example used in the instruction document.
type Spec struct {
	// Command is the tag this spec describes.
	Command Command

	// Usage tells the translator when to emit this command and what the
	// query payload must contain.
	Usage string

	// Example is an optional user-utterance/response pair rendered into
	// the instruction document.
	Example *Example
}

// Example is a sample exchange rendered into the instruction document.
type Example struct {
	User     string
	Response string
}

// specs is the single source of truth for the vocabulary, in declaration
// order. Both Instruction() and the dispatcher's exhaustiveness check are
// driven by this table.
var specs = []Spec{
	{
		Command: CommandNavigate,
		Usage:   `Use this when the user wants to go to a specific website. The "query" should be a full, valid URL (e.g., "https://www.google.com").`,
		Example: &Example{
			User:     "Go to Google.",
			Response: `{"command": "NAVIGATE", "query": "https://www.google.com", "message": "Navigating to Google."}`,
		},
	},
	{
		Command: CommandSearch,
		Usage:   `Use this when the user's request is a search query. The "query" should be the search terms.`,
	},
	{
		Command: CommandNone,
		Usage:   `Use this when the request is a general question or greeting that does not require a browser action. The "query" can be an empty string.`,
	},
	{
		Command: CommandPrompt,
		Usage:   `Use this when the user needs to be asked for more information or a follow-up question is required. The "query" should be the question to be displayed to the user.`,
	},
	{
		Command: CommandNewTab,
		Usage:   `Use this to open a new tab. The "query" can be a number to specify how many new tabs to open (e.g., "3"). If no number is given, use "1".`,
	},
	{
		Command: CommandCloseTab,
		Usage:   `Use this to close the current tab. The "query" can be an empty string.`,
	},
	{
		Command: CommandReload,
		Usage:   `Use this to reload the current page. The "query" can be an empty string.`,
	},
	{
		Command: CommandGoBack,
		Usage:   `Use this to go back to the previous page. The "query" can be an empty string.`,
	},
	{
		Command: CommandGoForward,
		Usage:   `Use this to go forward to the next page. The "query" can be an empty string.`,
	},
	{
		Command: CommandSetColor,
		Usage:   `Use this when the user asks to change the browser's theme color (e.g., the toolbar). The "query" should be the color name (e.g., "red", "blue", "green").`,
	},
	{
		Command: CommandEditPage,
		Usage:   `Use this when the user asks to change the content of the current webpage or execute JavaScript. The "query" should be a valid JavaScript command.`,
	},
	{
		Command: CommandNewWindow,
		Usage:   `Use this to open a new browser window. The "query" can be an empty string.`,
	},
	{
		Command: CommandEditCode,
		Usage:   `Use this when the user asks to edit the browser's source files. The "query" should be a JSON string containing "filename", "old_text", and "new_text" keys.`,
	},
	{
		Command: CommandSetFont,
		Usage:   `Use this when the user asks to change the browser's font. The "query" should be the font style (e.g., "font-family: 'Arial'; font-size: 14pt;").`,
	},
	{
		Command: CommandUploadFile,
		Usage:   `Use this when the user wants to upload a file. The "query" will be the file path.`,
	},
	{
		Command: CommandToggleSidebar,
		Usage:   `Use this when the user wants to show or hide the sidebar. The "query" can be an empty string.`,
	},
	{
		Command: CommandProcessText,
		Usage:   `Use this when the user highlights text and asks a question about it. The "query" should contain the highlighted text and the user's question.`,
	},
	{
		Command: CommandManageExtensions,
		Usage:   `Use this when the user asks to manage extensions.`,
	},
	{
		Command: CommandSyncData,
		Usage:   `Use this when the user wants to synchronize their data.`,
	},
	{
		Command: CommandTranslatePage,
		Usage:   `Use this when the user wants to translate a page. The "query" should be the target language code (e.g., "de").`,
	},
	{
		Command: CommandChangeSettings,
		Usage:   `Use this when the user wants to change settings.`,
	},
	{
		Command: CommandDeveloperTools,
		Usage:   `Use this when the user wants to inspect a page or open the developer tools.`,
	},
	{
		Command: CommandZoomIn,
		Usage:   `Use this when the user wants to zoom in. The "query" can be an empty string.`,
	},
	{
		Command: CommandZoomOut,
		Usage:   `Use this when the user wants to zoom out. The "query" can be an empty string.`,
	},
	{
		Command: CommandFindOnPage,
		Usage:   `Use this when the user wants to search for text on the page. The "query" should be the text to search for.`,
	},
	{
		Command: CommandPrintToPDF,
		Usage:   `Use this when the user wants to print the page to a PDF. The "query" can be an empty string.`,
	},
	{
		Command: CommandBookmarkPage,
		Usage:   `Use this when the user wants to bookmark the current page. The "query" can be an empty string.`,
	},
	{
		Command: CommandSwitchTab,
		Usage:   `Use this when the user wants to switch between tabs. The "query" should be the tab number.`,
	},
	{
		Command: CommandResizeWindow,
		Usage:   `Use this when the user wants to resize the window. The "query" should be the new dimensions (e.g., "800x600").`,
	},
	{
		Command: CommandNewChat,
		Usage:   `Use this when the user wants to start a new conversation. The "query" can be an empty string.`,
	},
	{
		Command: CommandCrawlSite,
		Usage:   `Use this when the user wants to crawl and summarize a website. The "query" should be the URL of the site to crawl.`,
		Example: &Example{
			User:     "Crawl this site with Oodles.",
			Response: `{"command": "CRAWL_SITE", "query": "https://www.example.com", "message": "My crawler, Oodles, is now analysing the website for you. Please hold on a moment."}`,
		},
	},
	{
		Command: CommandTabFormatVertical,
		Usage:   `Use this to change the tabs to a vertical (trail) format. The "query" can be an empty string.`,
		Example: &Example{
			User:     "Change to vertical tabs.",
			Response: `{"command": "TAB_FORMAT_VERTICAL", "query": "", "message": "Changing tabs to a vertical arrangement."}`,
		},
	},
	{
		Command: CommandTabFormatHorizontal,
		Usage:   `Use this to change the tabs to a horizontal multirow format. The "query" can be an empty string.`,
	},
	{
		Command: CommandOpenNotes,
		Usage:   `Use this to open the notes panel. The "query" can be an empty string.`,
	},
	{
		Command: CommandReopenTab,
		Usage:   `Use this to reopen the most recently closed tab. The "query" can be an empty string.`,
	},
	{
		Command: CommandPromptDisplay,
		Usage:   `Use this when the user provides a prompt and is on the new tab page. The "query" should be a JSON string with "user_query" and "praterich_response".`,
		Example: &Example{
			User:     "What is the capital of France? (while on the new tab page)",
			Response: `{"command": "PROMPT_DISPLAY", "query": "{\"user_query\":\"What is the capital of France?\",\"praterich_response\":\"The capital of France is Paris.\"}", "message": ""}`,
		},
	},
}

// commandSet is built from specs for O(1) membership checks.
var commandSet = func() map[Command]struct{} {
	set := make(map[Command]struct{}, len(specs))
	for _, s := range specs {
		set[s.Command] = struct{}{}
	}
	return set
}()

// Commands returns the full vocabulary in declaration order.
func Commands() []Command {
	cmds := make([]Command, len(specs))
	for i, s := range specs {
		cmds[i] = s.Command
	}
	return cmds
}

// Specs returns the vocabulary table in declaration order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Valid reports whether c is a member of the closed vocabulary.
func (c Command) Valid() bool {
	_, ok := commandSet[c]
	return ok
}

// Canonical resolves a raw tag to its canonical vocabulary member,
// accepting legacy alias spellings. The second return is false when the
// tag is not in the vocabulary at all.
func Canonical(tag string) (Command, bool) {
	if c := Command(tag); c.Valid() {
		return c, true
	}
	if c, ok := legacyAliases[tag]; ok {
		return c, true
	}
	return "", false
}

// persona is the fixed preamble of the instruction document. The
// per-command contract lines are generated from the spec table below it.
const persona = `You are Praterich, a diligent and helpful AI assistant from Stenoip Company, designed to act as a web browser.
Your personality: a highly professional, articulate and friendly AI with an eloquent, British-like tone. You are eager to help, always polite, and often use sophisticated vocabulary.
Your responses must be a single JSON object. Do not use Markdown or any other formatting.
The JSON object must contain exactly three keys:

1. "command": A string that specifies an action. The available commands are:`

const contractTail = `
2. "query": A string whose content depends on the command, as described above. Use an empty string when the command needs no payload.
3. "message": A brief, friendly, and helpful message to the user confirming the action.`

// Instruction renders the system-instruction document advertised to the
// translator. It is generated from the same table the dispatcher is
// checked against, so the two can never disagree about the vocabulary.
func Instruction() string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n")
	for _, s := range specs {
		fmt.Fprintf(&b, "    - %q: %s\n", string(s.Command), s.Usage)
	}
	b.WriteString(contractTail)
	b.WriteString("\n\nExamples of valid JSON responses:\n")
	for _, s := range specs {
		if s.Example == nil {
			continue
		}
		fmt.Fprintf(&b, "- User: %q\n  Response: %s\n", s.Example.User, s.Example.Response)
	}
	return b.String()
}

// PlainInstruction is the system instruction for plain-text mode, used
// for highlighted-text questions and crawl summaries. No structural
// contract applies to responses produced under it.
const PlainInstruction = `You are Praterich, a diligent and helpful AI assistant from Stenoip Company. When the user provides you with text and a question, respond with a helpful answer in a friendly, British-like tone. Your response should be a simple message, not JSON.`
