package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects one of the built-in color schemes.
type Variant int

const (
	Dark Variant = iota
	Light
)

// Variants lists the selectable schemes in picker order.
var Variants = []Variant{Dark, Light}

func (v Variant) String() string {
	if v == Light {
		return "light"
	}
	return "dark"
}

// ParseVariant resolves a configured theme name. Unknown names fall
// back to dark with an error so startup can report them.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("unknown theme %q (want dark or light)", name)
	}
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Bar          *lipgloss.Style
	BarEmpty     *lipgloss.Style
	Health       *lipgloss.Style
	Degraded     *lipgloss.Style
	Error        *lipgloss.Style
	Warning      *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	Loading      *lipgloss.Style
}

var darkStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	),
	BarEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Health: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	),
	Degraded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
}

var lightStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("252")).Bold(true),
	),
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	),
	BarEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Health: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	),
	Degraded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Italic(true),
	),
}

// For returns the style set for the variant.
func For(v Variant) *Styles {
	if v == Light {
		return &lightStyles
	}
	return &darkStyles
}

// Manager tracks the active variant and the picker selection in the
// help view. The selection only becomes active on Select, so moving
// through the picker previews nothing.
type Manager struct {
	Current       Variant
	SelectedIndex int
}

func NewManager(v Variant) *Manager {
	m := &Manager{Current: v}
	m.SyncSelection()
	return m
}

// Styles returns the active style set.
func (m *Manager) Styles() *Styles {
	return For(m.Current)
}

// Previous moves the picker selection up, clamped.
func (m *Manager) Previous() {
	if m.SelectedIndex > 0 {
		m.SelectedIndex--
	}
}

// Next moves the picker selection down, clamped.
func (m *Manager) Next() {
	if m.SelectedIndex < len(Variants)-1 {
		m.SelectedIndex++
	}
}

// Select applies the picker selection as the active variant.
func (m *Manager) Select() {
	m.Current = Variants[m.SelectedIndex]
}

// SyncSelection points the picker at the active variant.
func (m *Manager) SyncSelection() {
	for i, v := range Variants {
		if v == m.Current {
			m.SelectedIndex = i
			return
		}
	}
	m.SelectedIndex = 0
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
