// Package calculator provides the calculator panel for the TUI.
package calculator

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herissonneves/quantio/internal/adapters/driving/tui/styles"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// displayWidth is the width of the calculator display in cells.
const displayWidth = 26

// keypad is the hint grid rendered under the display. Rows mirror the
// token table: every label is a key the session accepts.
var keypad = [][]string{
	{"c", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "⌫", "="},
}

// View is the calculator panel.
type View struct {
	styles     *styles.Styles
	calculator driving.CalculatorService

	width  int
	height int
	ready  bool
}

// NewView creates a new calculator view.
func NewView(s *styles.Styles, calculator driving.CalculatorService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:     s,
		calculator: calculator,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetStyles swaps the style set when the theme changes.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Update handles messages for the calculator view. Key presses are
// mapped through the session's token table; unmapped keys are ignored.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.calculator != nil {
			v.calculator.Press(msg.String())
		}
		return v, nil
	}

	return v, nil
}

// Input returns the operand text currently displayed.
func (v *View) Input() string {
	if v.calculator == nil {
		return ""
	}
	return v.calculator.Input()
}

// Expression returns the pending expression text.
func (v *View) Expression() string {
	if v.calculator == nil {
		return ""
	}
	return v.calculator.Expression()
}

// View renders the calculator panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Calculator"))
	b.WriteString("\n\n")

	display := v.styles.InputField.Render(
		v.styles.Expression.Width(displayWidth).Render(v.Expression()) + "\n" +
			v.styles.Display.Width(displayWidth).Render(v.displayText()),
	)
	b.WriteString(display)
	b.WriteString("\n\n")

	b.WriteString(v.renderKeypad())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("type digits and operators, enter evaluates, esc clears"))

	return b.String()
}

// displayText returns the input, or the zero display before any entry.
func (v *View) displayText() string {
	text := v.Input()
	if text == "" {
		return "0"
	}
	return text
}

// renderKeypad renders the key hint grid.
func (v *View) renderKeypad() string {
	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			cells = append(cells, v.styles.Muted.Render(" "+label+" "))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return strings.Join(rows, "\n")
}
