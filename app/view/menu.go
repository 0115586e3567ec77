package view

import (
	"fmt"
	"io"
	"strings"
)

type ActionItem struct {
	Label    string `json:"label"`
	Command  string `json:"command"`
	Danger   bool   `json:"danger,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// ActionMenu lists what can be done with a single record.
type ActionMenu struct {
	Title string       `json:"title,omitempty"`
	Items []ActionItem `json:"items"`
}

func (m ActionMenu) Enabled() []ActionItem {
	items := make([]ActionItem, 0, len(m.Items))
	for _, item := range m.Items {
		if !item.Disabled {
			items = append(items, item)
		}
	}
	return items
}

func (m ActionMenu) Render(w io.Writer) error {
	var b strings.Builder
	if m.Title != "" {
		fmt.Fprintf(&b, "%s\n", m.Title)
	}
	for i, item := range m.Items {
		label := item.Label
		if item.Danger {
			label += " [!]"
		}
		if item.Disabled {
			fmt.Fprintf(&b, "  %d. %s (unavailable)\n", i+1, label)
			continue
		}
		fmt.Fprintf(&b, "  %d. %s\n     $ %s\n", i+1, label, item.Command)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
