// Package headless implements the headless executor for scripted,
// non-interactive browsing runs.
//
// The headless executor drives the whole pipeline from a YAML run
// file: scripted utterances are submitted to the assistant, the
// resulting intents are dispatched against a real browser session,
// and a transcript of the conversation is written out. It exists for
// smoke tests, demos, and CI runs where no user surface is attached.
package headless
