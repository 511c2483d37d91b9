package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/peterclemenko/hashcalc-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// DuplicatesCommand defines the CLI command parameters
type DuplicatesCommand struct {
	Targets      []string `json:"targets"`
	HashArgs     string   `json:"hash-args"`
	Workers      int      `json:"workers"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
	Help         bool     `json:"help"`
}

// cliDuplicatesCommand defines the CLI arguments as kingpin requires them
type cliDuplicatesCommand struct {
	cmd          *kingpin.CmdClause
	Targets      *[]string
	HashArgs     *string
	Workers      *int
	ConfigOutput *bool
	JSONOutput   *bool
	Help         *bool
}

func newCLIDuplicatesCommand(app *kingpin.Application) *cliDuplicatesCommand {
	c := new(cliDuplicatesCommand)
	c.cmd = app.Command("duplicates", "Determine files with matching digests.")

	c.Targets = c.cmd.Arg("targets", "files to compare by digest").Required().Strings()
	c.HashArgs = c.cmd.Flag("hash-args", "argument string selecting hash algorithms; empty selects MD5 and SHA1").Default(envOr("HASHCALC_HASH_ARGS", "")).Short('a').String()
	c.Workers = c.cmd.Flag("workers", "number of concurrent file computations").Int()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliDuplicatesCommand) Validate() (*DuplicatesCommand, error) {
	// migrate cliDuplicatesCommand to DuplicatesCommand
	cmd := new(DuplicatesCommand)
	cmd.Targets = append(cmd.Targets, *c.Targets...)
	cmd.HashArgs = *c.HashArgs
	cmd.Workers = *c.Workers
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput
	cmd.Help = false

	// handle environment variables
	envJSON, errJSON := envToBool("HASHCALC_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}
	if workers, ok := envToInt("HASHCALC_WORKERS"); ok && cmd.Workers == 0 {
		cmd.Workers = workers
	}

	// validate hash arguments once, before any file is processed
	if _, err := internals.ParseHashArgs(cmd.HashArgs); err != nil {
		return nil, err
	}

	return cmd, nil
}

// Run executes the CLI command duplicates on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error)
func (c *DuplicatesCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	sel, err := internals.ParseHashArgs(c.HashArgs)
	if err != nil {
		return 2, err
	}

	out := make(chan internals.FileResult)
	go internals.HashABatch(sel, c.Targets, c.Workers, out)

	store := internals.NewDigestStore()
	failures := 0
	for result := range out {
		if result.Err != nil {
			failures++
			log.Printfln(`error processing '%s': %s`, result.Path, result.Err.Error())
			continue
		}
		store.Record(result.Path, result.FileDigests())
	}

	duplicates := store.Duplicates()
	keys := make([]string, 0, len(duplicates))
	for key := range duplicates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if c.JSONOutput {
		type dataSet struct {
			Duplicates map[string][]string `json:"duplicates"`
			Failures   int                 `json:"failures"`
		}
		b, err := json.Marshal(&dataSet{Duplicates: duplicates, Failures: failures})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		for _, key := range keys {
			w.Println(key)
			for _, path := range duplicates[key] {
				w.Printfln(`  %s`, path)
			}
		}
		if len(keys) == 0 {
			log.Println(`no duplicates found`)
		}
	}

	if failures > 0 {
		return 3, fmt.Errorf(`%d of %d files failed`, failures, len(c.Targets))
	}
	return 0, nil
}
