package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/domain/entity"
)

// historySize is the number of past moves shown under the menu
const historySize = 8

// keyOrder lists the key symbols offered as moves, in menu order
var keyOrder = []system.KeySymbol{
	system.SymbolLeft,
	system.SymbolRight,
	system.SymbolUp,
	system.SymbolDown,
	system.SymbolBack,
	system.SymbolRestart,
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	sceneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	escapedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Foreground(lipgloss.Color("214")) // yellow
)

// move is one menu entry and the input event it sends
type move struct {
	label string
	event system.Event
}

// ConsoleUI is the BubbleTea model that runs the terminal game.
type ConsoleUI struct {
	nav     *system.Navigator
	router  *system.InputRouter
	moves   []move
	cursor  int
	frame   int
	history []string
}

// NewConsoleUI creates the model on the navigator's active scene
func NewConsoleUI(nav *system.Navigator) ConsoleUI {
	m := ConsoleUI{
		nav:    nav,
		router: system.NewInputRouter(nav),
	}
	m.moves = availableMoves(nav)
	return m
}

// availableMoves lists a click per live hotspot followed by every key that
// has a rule in the active scene.
func availableMoves(nav *system.Navigator) []move {
	var moves []move
	for _, h := range nav.Hotspots() {
		label := fmt.Sprintf("click %s", h.Item)
		if h.Target != nav.ActiveID() {
			label += " -> " + string(h.Target)
		}
		moves = append(moves, move{
			label: label,
			event: system.PointerPressed{X: h.X, Y: h.Y, Button: system.ButtonLeft},
		})
	}
	for _, sym := range keyOrder {
		r, ok := nav.Rules().KeyRule(nav.ActiveID(), sym)
		if !ok {
			continue
		}
		moves = append(moves, move{
			label: fmt.Sprintf("key %s -> %s", sym, r.Target),
			event: system.KeyPressed{Symbol: sym},
		})
	}
	return moves
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.moves)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.moves) == 0 {
			return m, nil
		}
		m.choose(m.moves[m.cursor])
	}
	return m, nil
}

// choose sends the move's event through the router and refreshes the menu
func (m *ConsoleUI) choose(mv move) {
	var ev system.Event
	switch e := mv.event.(type) {
	case system.PointerPressed:
		e.Frame = m.frame
		ev = e
	case system.KeyPressed:
		e.Frame = m.frame
		ev = e
	}
	m.frame++

	out := m.router.Dispatch(ev)
	m.history = append(m.history, describe(mv.label, out))
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}

	m.moves = availableMoves(m.nav)
	m.cursor = 0
}

func describe(label string, out system.Outcome) string {
	switch {
	case !out.Fired:
		return label + ": nothing happens"
	case out.Collected:
		return label + ": key collected"
	case out.Changed():
		return fmt.Sprintf("%s: %s -> %s", label, out.From, out.To)
	default:
		return label
	}
}

func (m ConsoleUI) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ESCAPE ROOM") + "\n\n")
	b.WriteString(sceneStyle.Render(fmt.Sprintf("%s  |  keys %d/%d  |  %s",
		m.nav.ActiveID(), m.nav.Inventory().Count(), entity.RequiredKeys, m.nav.State())) + "\n\n")

	if m.nav.State().Terminal() {
		b.WriteString(escapedStyle.Render("You escaped!") + "\n\n")
	}

	for i, mv := range m.moves {
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> "+mv.label) + "\n")
			continue
		}
		b.WriteString(itemStyle.Render("  "+mv.label) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, h := range m.history {
			b.WriteString(historyStyle.Render(h) + "\n")
		}
	}

	b.WriteString(historyStyle.Render("\n↑/↓ select • enter choose • q quit"))
	return b.String()
}
