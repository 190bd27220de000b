package helpgen

import (
	"github.com/MakeNowJust/heredoc"
)

/*
	A guide to the docs strings of a cli.Command in this program:

	- Usage -- a one-liner, used to describe the command in the program's overview of its commands.
	- Description -- freetext prose; may be multi-line.  Shows up in the `-h` for that command.
	- ArgsUsage -- placeholder names for positional arguments, if any.
*/

// helper for heredoc dedenting.  Keeps the one trailing linebreak.
func doc(s string) string {
	return heredoc.Doc(s)
}

var appHelpTemplate = doc(`
	# {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

	## Usage

	    {{.HelpName}} [global options] <command>
	{{- if .Version}}

	## Version

	    {{.Version}}
	{{- end}}
	{{- if .VisibleCommands}}

	## Commands
	{{range .VisibleCommands}}
	### {{join .Names ", "}}

	{{.Usage}}
	{{end}}
	{{- end}}
	{{- if .VisibleFlags}}

	## Global Options
	{{range .VisibleFlags}}
	    {{.}}
	{{- end}}
	{{- end}}
`)

var commandHelpTemplate = doc(`
	# {{.HelpName}}{{if .Usage}} - {{.Usage}}{{end}}

	## Usage

	    {{.HelpName}}{{if .VisibleFlags}} [command options]{{end}}{{if .ArgsUsage}} {{.ArgsUsage}}{{end}}
	{{- if .Description}}

	{{trim .Description}}
	{{- end}}
	{{- if .VisibleFlags}}

	## Options
	{{range .VisibleFlags}}
	    {{.}}
	{{- end}}
	{{- end}}
`)
