package tui

import (
	"histlint/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Analysis model.Analysis

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // indices into Analysis.Ranked to show
	SearchActive    bool
}

// InitialModel returns the initial state for a completed analysis.
func InitialModel(a model.Analysis) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter commands..."
	ti.CharLimit = 80
	ti.Width = 30

	m := AppModel{
		Analysis:    a,
		InputBuffer: ti,
	}
	m.FilteredIndices = allIndices(a)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func allIndices(a model.Analysis) []int {
	indices := make([]int, len(a.Ranked))
	for i := range a.Ranked {
		indices[i] = i
	}
	return indices
}
