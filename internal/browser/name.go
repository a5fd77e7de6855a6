package browser

import "strings"

// NameStore persists the display name.
type NameStore interface {
	SaveDisplayName(name string) error
}

// NameFlow is the confirm/skip flow around the remembered display name.
type NameFlow struct {
	store NameStore
	name  string
}

// NewNameFlow starts from the stored name.
func NewNameFlow(store NameStore, current string) *NameFlow {
	return &NameFlow{store: store, name: strings.TrimSpace(current)}
}

// Name returns the current trimmed name.
func (f *NameFlow) Name() string {
	return f.name
}

// NeedsPrompt reports whether the name dialog should open on startup.
func (f *NameFlow) NeedsPrompt() bool {
	return f.name == ""
}

// Label is the header text for the current name.
func (f *NameFlow) Label() string {
	if f.name == "" {
		return "Sin nombre"
	}
	return f.name
}

// Confirm stores the trimmed input.
func (f *NameFlow) Confirm(input string) error {
	return f.set(input)
}

// Skip keeps the current name and writes it back.
func (f *NameFlow) Skip() error {
	return f.set(f.name)
}

func (f *NameFlow) set(name string) error {
	f.name = strings.TrimSpace(name)
	if f.store == nil {
		return nil
	}
	return f.store.SaveDisplayName(f.name)
}
