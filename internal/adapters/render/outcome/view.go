package outcome

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/labdesk/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func renderView(result application.Result, s styles) (string, error) {
	if !result.IsSuccess() {
		header := s.failure.Render("failure") + " " + s.kind.Render(fmt.Sprintf("(%s)", result.Kind()))
		return lipgloss.JoinVertical(lipgloss.Left, header, s.message.Render(result.Message())), nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode outcome: %w", err)
	}
	var envelope struct {
		Data any `json:"data"`
	}
	if err := json.Unmarshal(encoded, &envelope); err != nil {
		return "", fmt.Errorf("decode outcome: %w", err)
	}

	lines := []string{
		s.success.Render("success"),
		s.message.Render(result.Message()),
		s.section.Render(renderData(envelope.Data, s)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

func renderData(data any, s styles) string {
	switch value := data.(type) {
	case nil:
		return s.empty.Render("no data")
	case map[string]any:
		return renderObject(value, s)
	case []any:
		if len(value) == 0 {
			return s.empty.Render("no items")
		}
		parts := []string{s.kind.Render(fmt.Sprintf("items: %d", len(value)))}
		for i, item := range value {
			block := renderData(item, s)
			if i > 0 {
				block = s.section.Render(block)
			}
			parts = append(parts, block)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		return s.value.Render(scalar(value))
	}
}

func renderObject(object map[string]any, s styles) string {
	keys := make([]string, 0, len(object))
	width := 0
	for key := range object {
		keys = append(keys, key)
		if len(key) > width {
			width = len(key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		label := s.key.Render(fmt.Sprintf("%-*s", width, key))
		lines = append(lines, label+"  "+s.value.Render(scalar(object[key])))
	}
	return strings.Join(lines, "\n")
}

func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
		return v
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}
