// Package converter provides the unit converter panel for the TUI.
package converter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/herissonneves/quantio/internal/adapters/driving/tui/messages"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/styles"
	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// field tracks which row of the converter form is focused.
type field int

const (
	fieldCategory field = iota
	fieldFrom
	fieldTo
	fieldValue
)

// fieldCount is the number of focusable rows.
const fieldCount = 4

// View is the unit converter panel.
type View struct {
	styles    *styles.Styles
	converter driving.ConverterService

	categories  []domain.Category
	categoryIdx int
	fromIdx     int
	toIdx       int

	valueInput textinput.Model
	focus      field

	width  int
	height int
	ready  bool
}

// NewView creates a new converter view.
func NewView(s *styles.Styles, converter driving.ConverterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	valueInput := textinput.New()
	valueInput.Placeholder = "0"
	valueInput.Prompt = ""
	valueInput.Focus()

	v := &View{
		styles:     s,
		converter:  converter,
		valueInput: valueInput,
		focus:      fieldValue,
		fromIdx:    0,
		toIdx:      1,
	}

	if converter != nil {
		v.categories = converter.Categories()
	}

	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
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

// Category returns the selected category.
func (v *View) Category() domain.Category {
	if len(v.categories) == 0 {
		return domain.CategoryLength
	}
	return v.categories[v.categoryIdx]
}

// SetCategory selects a category, typically from saved preferences.
// Unknown categories leave the selection unchanged.
func (v *View) SetCategory(c domain.Category) {
	for i, candidate := range v.categories {
		if candidate == c {
			v.categoryIdx = i
			v.resetUnits()
			return
		}
	}
}

// Value returns the current input text.
func (v *View) Value() string {
	return v.valueInput.Value()
}

// Result returns the formatted conversion result for the current form
// state. Invalid input converts to zero, silently.
func (v *View) Result() string {
	if v.converter == nil {
		return ""
	}
	return v.converter.ConvertText(v.valueInput.Value(), v.fromIdx, v.toIdx, v.Category())
}

// Update handles messages for the converter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg routes keys to row navigation, selector cycling or the
// value input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up":
		v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		return v, nil

	case "down":
		v.setFocus((v.focus + 1) % fieldCount)
		return v, nil

	case "left", "right":
		if v.focus != fieldValue {
			return v, v.cycle(msg.String() == "right")
		}
	}

	if v.focus == fieldValue {
		var cmd tea.Cmd
		v.valueInput, cmd = v.valueInput.Update(msg)
		if v.converter != nil {
			v.valueInput.SetValue(v.converter.ClampInput(v.valueInput.Value()))
		}
		return v, cmd
	}

	return v, nil
}

// setFocus moves row focus, managing the text input's focus state.
func (v *View) setFocus(f field) {
	v.focus = f
	if f == fieldValue {
		v.valueInput.Focus()
	} else {
		v.valueInput.Blur()
	}
}

// cycle advances the focused selector. Changing category resets the
// unit selections and reports the new category for persistence.
func (v *View) cycle(forward bool) tea.Cmd {
	step := 1
	if !forward {
		step = -1
	}

	switch v.focus {
	case fieldCategory:
		if len(v.categories) == 0 {
			return nil
		}
		v.categoryIdx = (v.categoryIdx + len(v.categories) + step) % len(v.categories)
		v.resetUnits()
		category := v.Category()
		return func() tea.Msg {
			return messages.CategoryChanged{Category: category}
		}

	case fieldFrom:
		if n := v.unitCount(); n > 0 {
			v.fromIdx = (v.fromIdx + n + step) % n
		}

	case fieldTo:
		if n := v.unitCount(); n > 0 {
			v.toIdx = (v.toIdx + n + step) % n
		}

	case fieldValue:
	}

	return nil
}

// resetUnits restores the default unit pair for the selected category.
func (v *View) resetUnits() {
	v.fromIdx = 0
	v.toIdx = 0
	if v.unitCount() > 1 {
		v.toIdx = 1
	}
}

// unitCount returns the number of units in the selected category.
func (v *View) unitCount() int {
	if v.converter == nil {
		return 0
	}
	return len(v.converter.Units(v.Category()))
}

// unitLabel renders a unit as "Name (abbrev)".
func unitLabel(u domain.UnitDefinition) string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Abbrev)
}

// View renders the converter panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Converter"))
	b.WriteString("\n\n")

	b.WriteString(v.renderRow(fieldCategory, "Category", v.Category().Description()))
	b.WriteString("\n")

	units := []domain.UnitDefinition{}
	if v.converter != nil {
		units = v.converter.Units(v.Category())
	}
	fromLabel, toLabel := "", ""
	if v.fromIdx < len(units) {
		fromLabel = unitLabel(units[v.fromIdx])
	}
	if v.toIdx < len(units) {
		toLabel = unitLabel(units[v.toIdx])
	}

	b.WriteString(v.renderRow(fieldFrom, "From", fromLabel))
	b.WriteString("\n")
	b.WriteString(v.renderRow(fieldTo, "To", toLabel))
	b.WriteString("\n")
	b.WriteString(v.renderRow(fieldValue, "Value", v.valueInput.View()))
	b.WriteString("\n\n")

	result := v.Result()
	if v.toIdx < len(units) {
		result += " " + units[v.toIdx].Abbrev
	}
	b.WriteString(v.styles.Display.Render(result))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("↑/↓ move, ←/→ change selection, type a value"))

	return b.String()
}

// renderRow renders one form row, highlighting the focused one.
func (v *View) renderRow(f field, label, value string) string {
	marker := "  "
	labelStyle := v.styles.Muted
	if v.focus == f {
		marker = "> "
		labelStyle = v.styles.Selected
	}
	return marker + labelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + v.styles.Normal.Render(value)
}
