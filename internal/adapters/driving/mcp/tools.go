package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/herissonneves/quantio/internal/core/domain"
)

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	A        float64 `json:"a" jsonschema:"the left operand"`
	Operator string  `json:"operator" jsonschema:"the operator: + - * or /"`
	B        float64 `json:"b" jsonschema:"the right operand"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Result         string `json:"result"`
	DivisionByZero bool   `json:"division_by_zero,omitempty"`
}

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Value    float64 `json:"value" jsonschema:"the value to convert"`
	From     string  `json:"from" jsonschema:"source unit, by abbreviation (km) or name (kilometre)"`
	To       string  `json:"to" jsonschema:"target unit, by abbreviation or name"`
	Category string  `json:"category,omitempty" jsonschema:"unit category: length, mass, temperature, volume or time (inferred when omitted)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Result   string  `json:"result"`
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Category string  `json:"category"`
}

// ListUnitsInput is the input schema for the list_units tool.
type ListUnitsInput struct {
	Category string `json:"category,omitempty" jsonschema:"restrict the listing to one category"`
}

// ListUnitsOutput is the output schema for the list_units tool.
type ListUnitsOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

// CategoryOutput describes one category and its units.
type CategoryOutput struct {
	Name  string       `json:"name"`
	Units []UnitOutput `json:"units"`
}

// UnitOutput describes a single unit.
type UnitOutput struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate a binary arithmetic operation",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a value between units",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_units",
		Description: "List available unit categories and units",
	}, s.handleListUnits)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	tok, ok := domain.MapKey(input.Operator)
	if !ok || tok.Kind != domain.TokenOperator {
		return nil, EvaluateOutput{}, fmt.Errorf("%w: %q", domain.ErrInvalidOperator, input.Operator)
	}

	result := s.ports.Calculator.EvaluateBinary(input.A, tok.Op, input.B)

	return nil, EvaluateOutput{
		Result:         result,
		DivisionByZero: result == domain.DisplayError,
	}, nil
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	category, fromIdx, toIdx, err := s.resolveUnits(input.From, input.To, input.Category)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	raw := domain.FormatNumber(input.Value)
	result := s.ports.Converter.ConvertText(raw, fromIdx, toIdx, category)
	units := s.ports.Converter.Units(category)

	return nil, ConvertOutput{
		Result:   result,
		Value:    input.Value,
		From:     units[fromIdx].Abbrev,
		To:       units[toIdx].Abbrev,
		Category: category.String(),
	}, nil
}

// handleListUnits handles the list_units tool invocation.
func (s *Server) handleListUnits(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListUnitsInput,
) (*mcp.CallToolResult, ListUnitsOutput, error) {
	categories := s.ports.Converter.Categories()
	if input.Category != "" {
		c := domain.Category(input.Category)
		if !c.IsValid() {
			return nil, ListUnitsOutput{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, input.Category)
		}
		categories = []domain.Category{c}
	}

	output := ListUnitsOutput{
		Categories: make([]CategoryOutput, len(categories)),
	}

	for i, c := range categories {
		units := s.ports.Converter.Units(c)
		co := CategoryOutput{
			Name:  c.String(),
			Units: make([]UnitOutput, len(units)),
		}
		for j, u := range units {
			co.Units[j] = UnitOutput{Name: u.Name, Abbrev: u.Abbrev}
		}
		output.Categories[i] = co
	}

	return nil, output, nil
}

// resolveUnits finds the category containing both units. With an
// explicit category only that category is searched.
func (s *Server) resolveUnits(from, to, categoryName string) (domain.Category, int, int, error) {
	categories := s.ports.Converter.Categories()
	if categoryName != "" {
		c := domain.Category(categoryName)
		if !c.IsValid() {
			return "", 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, categoryName)
		}
		categories = []domain.Category{c}
	}

	for _, c := range categories {
		fromIdx, okFrom := domain.FindUnit(c, from)
		toIdx, okTo := domain.FindUnit(c, to)
		if okFrom && okTo {
			return c, fromIdx, toIdx, nil
		}
	}

	return "", 0, 0, fmt.Errorf("%w: no category contains both %q and %q", domain.ErrUnknownUnit, from, to)
}
