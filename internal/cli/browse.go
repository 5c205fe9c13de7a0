package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/family"
	"github.com/northhaven/kinship/pkg/timeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command for the interactive TUI.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse people and the timeline interactively",
		Long: `Browse people and the timeline interactively.

Keys: ↑/↓ or j/k to move, ⏎ to open a profile, t for the timeline,
esc to go back, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := c.loadSite()
			if err != nil {
				return err
			}
			if len(st.People) == 0 {
				return errors.New(errors.ErrCodeNotFound, "no people loaded; nothing to browse")
			}
			model := newBrowseModel(st.People, timeline.Chronological(st.Events))
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
	return cmd
}

// browseView selects which screen the model renders.
type browseView int

const (
	viewList browseView = iota
	viewProfile
	viewTimeline
)

// browseModel is the bubbletea model for the browse command.
type browseModel struct {
	people []family.Person
	events []family.Event

	view    browseView
	cursor  int
	offset  int
	height  int
	current *family.Person
}

func newBrowseModel(people []family.Person, events []family.Event) browseModel {
	return browseModel{
		people: people,
		events: events,
		height: 15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			if m.view == viewList {
				return m, tea.Quit
			}
			m.view = viewList
		case "up", "k":
			if m.view == viewList && m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.view == viewList && m.cursor < len(m.people)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if m.view == viewList {
				m.current = &m.people[m.cursor]
				m.view = viewProfile
			}
		case "t":
			m.view = viewTimeline
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	switch m.view {
	case viewProfile:
		return m.profileView()
	case viewTimeline:
		return m.timelineView()
	default:
		return m.listView()
	}
}

func (m browseModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("People"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ profile  t timeline  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.people) {
		end = len(m.people)
	}

	for i := m.offset; i < end; i++ {
		p := &m.people[i]
		line := p.DisplayName()
		if p.BirthDate != "" || p.DeathDate != "" {
			line += listDimStyle.Render(fmt.Sprintf("  (%s–%s)", p.BirthDate, p.DeathDate))
		}
		if i == m.cursor {
			b.WriteString("▸ " + listSelectedStyle.Render(line))
		} else {
			b.WriteString("  " + listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.people) > m.height {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("\n%d/%d", m.cursor+1, len(m.people))))
	}
	return b.String()
}

func (m browseModel) profileView() string {
	p := m.current
	var b strings.Builder

	b.WriteString(StyleTitle.Render(p.DisplayName()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  t timeline  q quit"))
	b.WriteString("\n\n")

	b.WriteString("Born: " + vitals(p.BirthDate, p.BirthPlace) + "\n")
	b.WriteString("Died: " + vitals(p.DeathDate, p.DeathPlace) + "\n")

	writeRelation := func(label string, ids []string) {
		if len(ids) == 0 {
			return
		}
		names := make([]string, 0, len(ids))
		for _, ref := range family.ResolveLinks(m.people, ids) {
			names = append(names, ref.Label)
		}
		b.WriteString(label + ": " + strings.Join(names, "; ") + "\n")
	}
	writeRelation("Parents", p.Parents)
	writeRelation("Siblings", p.Siblings)
	writeRelation("Spouses", p.Spouses)
	writeRelation("Children", p.Children)

	if len(p.Residences) > 0 {
		b.WriteString("Residences:\n")
		for _, res := range p.Residences {
			b.WriteString("  - " + res.Location)
			if res.Period != "" {
				b.WriteString(" (" + res.Period + ")")
			}
			b.WriteString("\n")
		}
	}
	if p.Notes != "" {
		b.WriteString("\n" + listDimStyle.Render(p.Notes) + "\n")
	}
	return b.String()
}

func (m browseModel) timelineView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Family Timeline"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	if len(m.events) == 0 {
		b.WriteString(listDimStyle.Render("No events available."))
		return b.String()
	}
	for _, ev := range m.events {
		date := ev.Date
		if date == "" {
			date = "unknown"
		}
		b.WriteString(styleDate.Render(date) + "  " + ev.Title + "\n")
	}
	return b.String()
}
