package command

import (
	"fmt"
	"io"
	"strings"
)

// crlf ends every line: serial terminals do not translate a bare "\n".
const crlf = "\r\n"

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Line(text string) string {
	return text + crlf
}

func (f *ResponseFormatter) Error(name string, err error) string {
	return fmt.Sprintf("%s: %v%s", name, err, crlf)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("%s: %s%s", label, value, crlf)
}

func (f *ResponseFormatter) Usage(usage string) string {
	return "usage: " + usage + crlf
}

func (f *ResponseFormatter) Table(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-*s  %s%s", width, row[0], row[1], crlf)
	}
	return sb.String()
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}

func (f *ResponseFormatter) Write(w io.Writer, sections ...string) error {
	_, err := io.WriteString(w, f.Combine(sections...))
	return err
}
