package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// MetricCard is a dashboard counter. The notification dot is driven by the
// explicit Notify flag, never by the title text.
type MetricCard struct {
	Title       string `json:"title"`
	Value       int64  `json:"value"`
	Description string `json:"description,omitempty"`
	Notify      bool   `json:"notify"`
}

func (c MetricCard) ShowNotification() bool {
	return c.Notify && c.Value > 0
}

func (c MetricCard) MarshalJSON() ([]byte, error) {
	type card MetricCard
	return json.Marshal(struct {
		card
		ShowNotification bool `json:"showNotification"`
	}{card: card(c), ShowNotification: c.ShowNotification()})
}

func (c MetricCard) Render(w io.Writer) error {
	title := c.Title
	if c.ShowNotification() {
		title += " (!)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "  %d\n", c.Value)
	if c.Description != "" {
		fmt.Fprintf(&b, "  %s\n", c.Description)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// CategoryCard links a dashboard section to the command that opens it.
type CategoryCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Command     string `json:"command"`
}

func (c CategoryCard) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s\n  $ %s\n", c.Title, c.Description, c.Command)
	return err
}

type Dashboard struct {
	Cards      []MetricCard   `json:"cards"`
	Categories []CategoryCard `json:"categories"`
}

func (d Dashboard) Render(w io.Writer) error {
	for _, card := range d.Cards {
		if err := card.Render(w); err != nil {
			return err
		}
	}
	if len(d.Categories) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, category := range d.Categories {
		if err := category.Render(w); err != nil {
			return err
		}
	}
	return nil
}
