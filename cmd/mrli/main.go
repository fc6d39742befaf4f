/*
Mrli starts an interactive Marlin SPARQL parse session, or checks SPARQL files.

With no files given, it reads SPARQL statements from stdin, parses each one and
prints any syntax errors found, until the ":quit" command is entered or input
ends. A statement may span several lines; it is parsed once a line ends with
";;" or a blank line is entered.

With files given, each file is parsed as a single statement and its syntax
errors are printed in the form FILE:LINE:COL: MESSAGE. The exit status is
non-zero if any file has errors.

Usage:

	mrli [flags] [FILE...]

The flags are:

	-v, --version
		Give the current version of Marlin and then exit.

	-u, --update
		Parse statements as SPARQL update requests instead of queries. In an
		interactive session this can be changed with ":query" and ":update".

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

Once a session has started, type ":help" for a list of commands.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/marlin"
	"github.com/dekarrin/marlin/internal/version"
	"github.com/dekarrin/marlin/parse"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem during the session.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine or reading a file.
	ExitInitError

	// ExitSyntaxError indicates that a file given to check has syntax errors.
	ExitSyntaxError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Marlin and then exit.")
	flagUpdate  = pflag.BoolP("update", "u", false, "Parse statements as SPARQL updates instead of queries.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	mode := parse.Query
	if *flagUpdate {
		mode = parse.Update
	}

	if pflag.NArg() > 0 {
		checkFiles(mode, pflag.Args())
		return
	}

	eng, initErr := marlin.New(os.Stdin, os.Stdout, *flagDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if mode == parse.Update {
		eng.SetMode(mode)
	}

	err := eng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}

func checkFiles(mode parse.Mode, files []string) {
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			continue
		}

		src := string(data)
		res := parse.ParseAs(mode, src)
		for _, d := range res.Diagnostics {
			fmt.Printf("%s:%s\n", name, d.Format(src))
		}
		if !res.OK() && returnCode == ExitSuccess {
			returnCode = ExitSyntaxError
		}
	}
}
