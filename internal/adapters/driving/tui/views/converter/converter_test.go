package converter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herissonneves/quantio/internal/adapters/driving/tui/messages"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/styles"
	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/core/services"
)

func newTestView() *View {
	return NewView(styles.DefaultStyles(), services.NewConverterService())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeValue(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(keyMsg(string(r)))
	}
	return v
}

func TestNewView(t *testing.T) {
	v := newTestView()
	require.NotNil(t, v)

	assert.Equal(t, domain.CategoryLength, v.Category())
	assert.Equal(t, 0, v.fromIdx)
	assert.Equal(t, 1, v.toIdx)
	assert.Equal(t, fieldValue, v.focus)
}

func TestView_TypedValueConverts(t *testing.T) {
	v := typeValue(newTestView(), "2.5")

	// Default selection is metres to kilometres.
	assert.Equal(t, "2.5", v.Value())
	assert.Equal(t, "0.0025", v.Result())
}

func TestView_EmptyValueConvertsToZero(t *testing.T) {
	v := newTestView()
	assert.Equal(t, "0", v.Result())
}

func TestView_ValueClampedToBudget(t *testing.T) {
	v := typeValue(newTestView(), "0.123456789")

	assert.LessOrEqual(t, len(v.Value()), domain.DefaultByteBudget)
}

func TestView_FocusCycles(t *testing.T) {
	v := newTestView()

	v, _ = v.Update(keyMsg("down"))
	assert.Equal(t, fieldCategory, v.focus)

	v, _ = v.Update(keyMsg("up"))
	assert.Equal(t, fieldValue, v.focus)

	v, _ = v.Update(keyMsg("up"))
	assert.Equal(t, fieldTo, v.focus)
}

func TestView_CategoryCycleEmitsMessage(t *testing.T) {
	v := newTestView()
	v.setFocus(fieldCategory)

	v, cmd := v.Update(keyMsg("right"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.CategoryChanged)
	require.True(t, ok)
	assert.Equal(t, v.Category(), msg.Category)
	assert.NotEqual(t, domain.CategoryLength, v.Category())
}

func TestView_CategoryCycleResetsUnits(t *testing.T) {
	v := newTestView()
	v.setFocus(fieldTo)
	v, _ = v.Update(keyMsg("right")) // toIdx 2

	v.setFocus(fieldCategory)
	v, _ = v.Update(keyMsg("right"))

	assert.Equal(t, 0, v.fromIdx)
	assert.Equal(t, 1, v.toIdx)
}

func TestView_UnitCyclingWraps(t *testing.T) {
	v := newTestView()
	v.setFocus(fieldFrom)

	v, _ = v.Update(keyMsg("left"))

	units := services.NewConverterService().Units(domain.CategoryLength)
	assert.Equal(t, len(units)-1, v.fromIdx)
}

func TestView_SetCategory(t *testing.T) {
	v := newTestView()

	v.SetCategory(domain.CategoryMass)
	assert.Equal(t, domain.CategoryMass, v.Category())

	v.SetCategory(domain.Category("bogus"))
	assert.Equal(t, domain.CategoryMass, v.Category())
}

func TestView_TemperatureConversion(t *testing.T) {
	v := newTestView()
	v.SetCategory(domain.CategoryTemperature)
	v = typeValue(v, "100")

	// Celsius to Fahrenheit is the default pair.
	assert.Equal(t, "212", v.Result())
}

func TestView_Render(t *testing.T) {
	v := typeValue(newTestView(), "1")
	v.SetDimensions(80, 24)

	out := v.View()
	assert.Contains(t, out, "Converter")
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Length")
	assert.Contains(t, out, "Metre")
}
