package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and initializes the global configuration manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)

	if err := manager.RegisterSection(NewSearchSection()); err != nil {
		return err
	}
	if err := manager.RegisterSection(NewNavigationSection()); err != nil {
		return err
	}
	if err := manager.RegisterSection(NewAssistantSection()); err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetSearch returns the search section from global config.
// Returns nil if config is not initialized.
func GetSearch() *SearchSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDSearch)
	if !ok {
		return nil
	}

	search, ok := section.(*SearchSection)
	if !ok {
		return nil
	}

	return search
}

// GetNavigation returns the navigation section from global config.
// Returns nil if config is not initialized.
func GetNavigation() *NavigationSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDNavigation)
	if !ok {
		return nil
	}

	nav, ok := section.(*NavigationSection)
	if !ok {
		return nil
	}

	return nav
}

// GetAssistant returns the assistant section from global config.
// Returns nil if config is not initialized.
func GetAssistant() *AssistantSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDAssistant)
	if !ok {
		return nil
	}

	assistant, ok := section.(*AssistantSection)
	if !ok {
		return nil
	}

	return assistant
}

// resetGlobal clears the global manager, for tests.
func resetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = nil
}
