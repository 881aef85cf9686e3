package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStylesRender(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"title", TitleStyle},
		{"subtitle", SubtitleStyle},
		{"success", SuccessStyle},
		{"error", ErrorStyle},
		{"warning", WarningStyle},
		{"info", InfoStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The styled output keeps the message text regardless of the
			// terminal color profile.
			assert.Contains(t, tt.style.Render("amcli message"), "amcli message")
		})
	}
}
