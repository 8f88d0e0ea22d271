package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/feather-lang/libxc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newBrowseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the functional catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newBrowseModel(libxc.Catalog(), opts.polarization())
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type browseState int

const (
	stateList browseState = iota
	stateDetail
)

type browseModel struct {
	entries      []libxc.Entry
	visible      []libxc.Entry
	filter       textinput.Model
	cursor       int
	offset       int
	height       int
	state        browseState
	polarization libxc.Polarization
	detail       *libxc.Info
	err          error
}

func newBrowseModel(entries []libxc.Entry, polarization libxc.Polarization) browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter by name or id"
	ti.Prompt = "/ "
	ti.Focus()

	m := browseModel{
		entries:      entries,
		filter:       ti,
		height:       20,
		polarization: polarization,
	}
	m.applyFilter()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// applyFilter keeps entries whose name or ID contains the filter text.
func (m *browseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	visible := make([]libxc.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(fmt.Sprint(e.Number), query) {
			visible = append(visible, e)
		}
	}
	m.visible = visible
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
	m.scroll()
}

// scroll keeps the cursor inside the window of listed rows.
func (m *browseModel) scroll() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m browseModel) rows() int {
	return max(m.height-4, 1)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateDetail {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.state = stateList
				m.detail = nil
				m.err = nil
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
				m.scroll()
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.scroll()
			}
			return m, nil
		case "enter":
			if len(m.visible) == 0 {
				return m, nil
			}
			info, err := describe(fmt.Sprint(m.visible[m.cursor].Number), m.polarization)
			m.state = stateDetail
			m.err = err
			if err == nil {
				m.detail = &info
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder

	if m.state == stateDetail {
		b.WriteString(titleStyle.Render("libxc functional"))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
		} else {
			r := &renderer{w: &b, format: formatTable, styled: true}
			_ = r.fields(infoFields(*m.detail))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc: back • q: quit"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("libxc functionals (%d/%d)", len(m.visible), len(m.entries))))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	end := min(m.offset+m.rows(), len(m.visible))
	for i := m.offset; i < end; i++ {
		e := m.visible[i]
		line := fmt.Sprintf("%4d  %-28s %s", e.Number, e.Name, e.Family)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: move • enter: details • esc: quit"))
	return b.String()
}
