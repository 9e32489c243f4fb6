// Package theme holds the light/dark preference for the terminal client.
// The preference is an explicit handle passed to rendering code rather than
// ambient package state.
package theme

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Theme carries the style set used by the terminal renderer.
type Theme struct {
	Mode    Mode
	Title   lipgloss.Style
	Letter  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

func lightTheme() Theme {
	return Theme{
		Mode:    Light,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")),
		Letter:  lipgloss.NewStyle().Foreground(lipgloss.Color("#101F38")).Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

func darkTheme() Theme {
	return Theme{
		Mode:    Dark,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Letter:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2")).Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

// preference is the JSON payload persisted on disk.
type preference struct {
	Theme Mode `json:"theme"`
}

// Manager owns the persisted preference file and the active mode.
type Manager struct {
	path string
	mode Mode
}

// DefaultPath places the preference under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".civicletter", "theme.json")
	}
	return filepath.Join(dir, "civicletter", "theme.json")
}

// Load reads the persisted preference, falling back to the terminal
// background probe and finally light.
func Load(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	m := &Manager{path: path, mode: Light}
	if b, err := os.ReadFile(path); err == nil {
		var p preference
		if json.Unmarshal(b, &p) == nil && (p.Theme == Light || p.Theme == Dark) {
			m.mode = p.Theme
			return m
		}
	}
	if lipgloss.HasDarkBackground() {
		m.mode = Dark
	}
	return m
}

func (m *Manager) Mode() Mode { return m.mode }

// Current returns the active style set.
func (m *Manager) Current() Theme {
	if m.mode == Dark {
		return darkTheme()
	}
	return lightTheme()
}

// Toggle flips the preference, persists it, and returns the new style set.
func (m *Manager) Toggle() Theme {
	if m.mode == Light {
		m.mode = Dark
	} else {
		m.mode = Light
	}
	m.persist()
	return m.Current()
}

func (m *Manager) persist() {
	b, err := json.MarshalIndent(preference{Theme: m.mode}, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		slog.Warn("could not persist theme preference", "error", err)
		return
	}
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		slog.Warn("could not persist theme preference", "error", err)
		return
	}
	if err := os.Rename(tmp, m.path); err != nil {
		slog.Warn("could not persist theme preference", "error", err)
	}
}
