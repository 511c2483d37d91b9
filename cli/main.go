package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var app *kingpin.Application
var hash *cliHashCommand
var duplicates *cliDuplicatesCommand
var hashAlgos *cliHashAlgosCommand
var version *cliVersionCommand

const usageTemplate = `{{define "FormatCommand"}}\
{{if .FlagSummary}} {{.FlagSummary}}{{end}}\
{{range .Args}} {{if not .Required}}[{{end}}<{{.Name}}>{{if .Value|IsCumulative}}...{{end}}{{if not .Required}}]{{end}}{{end}}\
{{end}}\


{{define "FormatCommands"}}\
{{range .FlattenedCommands}}\
{{if not .Hidden}}\
  ["{{.FullCommand}}", "{{if .Default}}*{{end}}{{template "FormatCommand" .}}",
{{.Help|Wrap 4}}
{{end}}\
{{end}}\
{{end}}\

{{define "FormatUsage"}}\
{{template "FormatCommand" .}}{{if .Commands}} <command> [<args> ...]{{end}}\
{{end}}\

{
{{if .Context.SelectedCommand}}\
  "usage": "{{.App.Name}} {{.Context.SelectedCommand}}{{template "FormatUsage" .Context.SelectedCommand}}",
{{if .Context.SelectedCommand.Help}}\
  "help": "{{.Context.SelectedCommand.Help}}",
{{end}}\
{{else}}\
  "usage": "{{.App.Name}}{{template "FormatUsage" .App}}",
  "help": "{{.App.Help}}",
{{end}}\
{{if .Context.Flags}}\
  "flags": [
{{range .Context.Flags}}{{if not .Hidden}}\
    ["{{.|FormatFlag true}}", "{{.Help}}"],
{{end}}{{end}}\
  ],
{{end}}\

{{if .Context.Args}}\
  "args": [
{{range .Context.Args}}\
    ["{{if not .Required}}[{{end}}<{{ .Name }}>{{if not .Required}}]{{end}}", "{{.Help}}"],
{{end}}\
  ]
{{end}}\

{{if .Context.SelectedCommand}}\
{{if len .Context.SelectedCommand.Commands}}\
  "subcommands": [
  {{template "FormatCommands" .Context.SelectedCommand}}
]
{{end}}\
{{else if .App.Commands}}\
  "commands": [
  {{template "FormatCommands" .App}}
]
  {{end}}\
}
`

// CLI response for errors
type errorResponse struct {
	ErrorMessage string `json:"error"`
	ExitCode     int    `json:"-"`
}

func (e *errorResponse) Print() int {
	if jsonOutput() {
		fmt.Fprintf(os.Stderr, "%s\n", e.JSON())
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", e.String())
	}
	return e.ExitCode
}

func (e *errorResponse) String() string {
	return `cli: error: ` + e.ErrorMessage
}

func (e *errorResponse) JSON() string {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON marshalling error: %s", err)
		return ""
	}
	return string(jsonBytes)
}

// handleError reports the given error message and returns the exit code
func handleError(message string, code int, asJSON bool) int {
	resp := &errorResponse{message, code}
	if asJSON {
		fmt.Fprintf(os.Stderr, "%s\n", resp.JSON())
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", resp.String())
	}
	return resp.ExitCode
}

func init() {
	app = kingpin.New("hashcalc", "Calculate hash values of file content.")
	app.Version("1.0.0")
	app.HelpFlag.Short('h')

	// if --json, show help as JSON
	if jsonOutput() {
		app.UsageTemplate(usageTemplate)
	} else {
		app.UsageTemplate(kingpin.CompactUsageTemplate)
	}

	hash = newCLIHashCommand(app)
	duplicates = newCLIDuplicatesCommand(app)
	hashAlgos = newCLIHashAlgosCommand(app)
	version = newCLIVersionCommand(app)
}

func cli() int {
	subcommand, err := app.Parse(os.Args[1:])
	if err != nil {
		resp := &errorResponse{err.Error(), 1}
		return resp.Print()
	}

	w := &plainOutput{device: os.Stdout}
	logOut := &plainOutput{device: os.Stderr}

	var exitCode int
	var cmdError error

	switch subcommand {
	case hash.cmd.FullCommand():
		hashSettings, err := hash.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		exitCode, cmdError = hashSettings.Run(w, logOut)
		if cmdError != nil {
			return handleError(cmdError.Error(), exitCode, hashSettings.JSONOutput)
		}

	case duplicates.cmd.FullCommand():
		duplicatesSettings, err := duplicates.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		exitCode, cmdError = duplicatesSettings.Run(w, logOut)
		if cmdError != nil {
			return handleError(cmdError.Error(), exitCode, duplicatesSettings.JSONOutput)
		}

	case hashAlgos.cmd.FullCommand():
		hashAlgosSettings, err := hashAlgos.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		exitCode, cmdError = hashAlgosSettings.Run(w, logOut)
		if cmdError != nil {
			return handleError(cmdError.Error(), exitCode, hashAlgosSettings.JSONOutput)
		}

	case version.cmd.FullCommand():
		versionSettings, err := version.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		exitCode, cmdError = versionSettings.Run(w, logOut)
		if cmdError != nil {
			return handleError(cmdError.Error(), exitCode, versionSettings.JSONOutput)
		}

	default:
		kingpin.FatalUsage("unknown command")
	}

	return exitCode
}

func main() {
	exitcode := cli()
	os.Exit(exitcode)
}
