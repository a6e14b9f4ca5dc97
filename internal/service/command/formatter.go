package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/tuskshell/internal/service/ui"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Title(title string) string {
	return ui.TitleStyle.Render(title) + "\n"
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("%s  ›  %s\n", ui.DescStyle.Render(label), ui.UsageStyle.Render(value))
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("%s %s\n", ui.DescStyle.Render("usage:"), ui.FlagStyle.Render(command))
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}
