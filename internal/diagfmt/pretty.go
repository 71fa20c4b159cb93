package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"cxlint/internal/diag"
	"cxlint/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	markColor = color.New(color.FgRed)
)

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() beforehand for deterministic order) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//	    <source line>
//	    ^~~~
//
// followed by notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d, opts)
		writeSpanContext(w, fs, d.Primary, opts)
		for _, note := range d.Notes {
			if int(note.Span.File) >= fs.Len() {
				fmt.Fprintf(w, "note: %s\n", note.Msg)
				continue
			}
			start, _ := fs.Resolve(note.Span)
			file := fs.Get(note.Span.File)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", file.Path, start.Line, start.Col, note.Msg)
			writeSpanContext(w, fs, note.Span, opts)
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	// load failures carry a span pointing at no loaded file
	if int(d.Primary.File) >= fs.Len() {
		sev := fmt.Sprintf("%s %s:", d.Severity, d.Code.ID())
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s %s\n", sev, d.Message)
		return
	}
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	pos := fmt.Sprintf("%s:%d:%d:", file.Path, start.Line, start.Col)
	sev := fmt.Sprintf("%s %s:", d.Severity, d.Code.ID())
	if opts.Color {
		pos = posColor.Sprint(pos)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s\n", pos, sev, d.Message)
}

// writeSpanContext prints the offending line with a caret underline.
func writeSpanContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if int(sp.File) >= fs.Len() {
		return
	}
	start, end := fs.Resolve(sp)
	file := fs.Get(sp.File)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	for n := start.Line - uint32(min(opts.Context, int(start.Line)-1)); n < start.Line; n++ {
		fmt.Fprintf(w, "    %s\n", expandTabs(file.GetLine(n)))
	}
	fmt.Fprintf(w, "    %s\n", expandTabs(line))

	// underline is clamped to the first line of the span
	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		underlineLen = int(end.Col - start.Col)
	}
	prefix := columnPrefix(line, int(start.Col)-1)
	marker := "^" + strings.Repeat("~", max(0, underlineLen-1))
	if opts.Color {
		marker = markColor.Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", prefix, marker)
}

// columnPrefix reproduces the whitespace geometry of line up to col so
// the caret lands under the right character even with tabs.
func columnPrefix(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	for _, ch := range line[:col] {
		if ch == '\t' {
			b.WriteString("    ")
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
