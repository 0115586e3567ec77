package view

import (
	"fmt"
	"io"
)

const clearLine = "\r\033[K"

type Spinner struct {
	Loading bool
	Message string
}

// Render draws the spinner line while loading and clears it otherwise.
func (s Spinner) Render(w io.Writer) error {
	if !s.Loading {
		_, err := io.WriteString(w, clearLine)
		return err
	}
	message := s.Message
	if message == "" {
		message = "Loading"
	}
	_, err := fmt.Fprintf(w, "%s... %s", clearLine, message)
	return err
}
