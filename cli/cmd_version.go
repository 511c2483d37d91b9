package main

import (
	"encoding/json"
	"fmt"

	"github.com/peterclemenko/hashcalc-go/internals"
	v1 "github.com/peterclemenko/hashcalc-go/v1"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cliVersionCommand defines the CLI arguments as kingpin requires them
type cliVersionCommand struct {
	cmd          *kingpin.CmdClause
	ConfigOutput *bool
	JSONOutput   *bool
	Help         *bool
}

func newCLIVersionCommand(app *kingpin.Application) *cliVersionCommand {
	c := new(cliVersionCommand)
	c.cmd = app.Command("version", "Return metadata about this implementation.")

	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliVersionCommand) Validate() (*VersionCommand, error) {
	// migrate cliVersionCommand to VersionCommand
	cmd := new(VersionCommand)
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput
	cmd.Help = false

	// handle environment variables
	envJSON, errJSON := envToBool("HASHCALC_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}

	return cmd, nil
}

// VersionCommand defines the CLI command parameters
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
	Help         bool `json:"help"`
}

// Run executes the CLI command version on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error)
func (c *VersionCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	versionString := fmt.Sprintf("%d.%d.%d", v1.VERSION_MAJOR, v1.VERSION_MINOR, v1.VERSION_PATCH)

	if c.JSONOutput {
		type output struct {
			Version     string   `json:"version"`
			ReleaseDate string   `json:"release-date"`
			HashAlgos   []string `json:"hash-algorithms"`
		}
		b, err := json.Marshal(&output{
			Version:     versionString,
			ReleaseDate: v1.RELEASE_DATE,
			HashAlgos:   internals.SupportedHashAlgorithms(),
		})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(versionString)
	}

	return 0, nil
}
