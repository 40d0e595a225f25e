package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTitle(out io.Writer, title string) {
	fmt.Fprintln(out, titleStyle.Render(title))
}

func writeField(out io.Writer, label string, value any) {
	fmt.Fprintln(out, labelStyle.Render(label)+valueStyle.Render(fmt.Sprint(value)))
}

func writeList(out io.Writer, label string, values []string) {
	if len(values) == 0 {
		writeField(out, label, "-")
		return
	}
	writeField(out, label, strings.Join(values, " "))
}
