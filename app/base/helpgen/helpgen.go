/*
This package contains our custom help text generators,
and wires them into `urfave/cli` at package init time.

The templates emit markdown.
When the destination is a terminal, the markdown is rendered with glamour;
otherwise it is written as plain markdown, which keeps help output stable
for pipes, files, and tests.

(Package init time is the only hook `urfave/cli` offers for this:
the help printer and templates are package-scope vars upstream.)
*/
package helpgen

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

type RenderMode uint8

const (
	Mode_Auto     RenderMode = iota // Terminal rendering when the writer is a terminal, markdown otherwise.
	Mode_Markdown                   // Always plain markdown.
	Mode_Terminal                   // Always glamour rendering.
)

// Mode selects how help text is emitted.  Tests set Mode_Markdown.
var Mode = Mode_Auto

// glamourStyle is one of glamour's standard style names.
const glamourStyle = "dark"

// printHelpCustom is the entrypoint for `urfave/cli`'s customization.
func printHelpCustom(out io.Writer, tmpl string, data interface{}, customFuncs map[string]interface{}) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"trim": strings.TrimSpace,
	}
	for key, value := range customFuncs {
		funcMap[key] = value
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 1, 8, 4, ' ', 0)
	t := template.Must(template.New("help").Funcs(funcMap).Parse(tmpl))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
	_ = w.Flush()
	emit(out, buf.Bytes())
}

func emit(out io.Writer, markdown []byte) {
	if !wantTerminal(out) {
		out.Write(markdown)
		return
	}
	rendered, err := glamour.Render(string(markdown), glamourStyle)
	if err != nil {
		out.Write(markdown)
		return
	}
	io.WriteString(out, rendered)
}

func wantTerminal(out io.Writer) bool {
	switch Mode {
	case Mode_Markdown:
		return false
	case Mode_Terminal:
		return true
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func init() {
	cli.HelpPrinterCustom = printHelpCustom
	cli.AppHelpTemplate = appHelpTemplate
	cli.CommandHelpTemplate = commandHelpTemplate
	cli.SubcommandHelpTemplate = commandHelpTemplate
}
