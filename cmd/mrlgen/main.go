/*
Mrlgen generates the Marlin SPARQL parser from its grammar.

It reads a grammar in the BNF-like notation of the internal grammar package,
computes FIRST sets for every rule and writes one recursive-descent routine per
rule, along with the enumerations of tree node kinds and token kinds. It is
normally run through go generate:

	go generate ./parse

Usage:

	mrlgen [flags]

The flags are:

	-v, --version
		Give the current version of Marlin and then exit.

	-c, --config FILE
		Read generation settings from the given TOML file. Relative paths
		inside of it are relative to the file itself. Defaults to the value of
		environment variable MARLIN_GEN_CONFIG, and if that is not given, to
		"mrlgen.toml" in the current directory.

	--check
		Do not write anything. Instead, exit with a non-zero status if any of
		the generated files differs from what is on disk.

	-t, --table [RULE...]
		Do not generate code. Instead, print a table of whether each rule is
		nullable along with its FIRST and FOLLOW sets. If rule names are given
		as arguments only those rules are included.

	-w, --width COLUMNS
		Wrap the table printed by --table to the given width. Defaults to 120.

	-s, --sample RULE
		Do not generate code. Instead, print random sentences derived from the
		given rule, one per line, as the names of their terminals.

	-n, --count N
		Print N sentences with --sample. Defaults to 5.

	--seed SEED
		Seed the random choices made by --sample. Defaults to the current time.

	--strict
		Treat LL(1) conflicts in the grammar as errors rather than warnings.
		The grammar is also rewritten into plain BNF and given to the LL(1)
		test of ictiobus; if that test fails although no conflicts were
		found, that is an error too.
*/
package main

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dekarrin/marlin/internal/codegen"
	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGenerateError indicates that the parser could not be generated.
	ExitGenerateError

	// ExitInitError indicates an issue reading the configuration or grammar.
	ExitInitError

	// ExitOutOfDate indicates that --check found a generated file that does
	// not match the grammar.
	ExitOutOfDate
)

const EnvConfig = "MARLIN_GEN_CONFIG"

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Marlin and then exit.")
	flagConfig  = pflag.StringP("config", "c", "mrlgen.toml", "Read generation settings from the given TOML file.")
	flagCheck   = pflag.Bool("check", false, "Check that generated files are current instead of writing them.")
	flagTable   = pflag.BoolP("table", "t", false, "Print nullable, FIRST and FOLLOW of each rule instead of generating code.")
	flagWidth   = pflag.IntP("width", "w", 120, "Wrap the table to the given width.")
	flagSample  = pflag.StringP("sample", "s", "", "Print random sentences derived from the given rule instead of generating code.")
	flagCount   = pflag.IntP("count", "n", 5, "Number of sentences to print with --sample.")
	flagSeed    = pflag.Int64("seed", 0, "Seed for --sample.")
	flagStrict  = pflag.Bool("strict", false, "Treat grammar conflicts as errors.")
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		}
		os.Exit(returnCode)
	}()

	log.SetFlags(0)
	log.SetPrefix("mrlgen: ")

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if !*flagTable && pflag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	cfgFile := *flagConfig
	if env := os.Getenv(EnvConfig); env != "" && !pflag.Lookup("config").Changed {
		cfgFile = env
	}

	cfg, err := codegen.LoadConfig(cfgFile)
	if err != nil {
		log.Printf("ERROR %s: %v", cfgFile, err)
		returnCode = ExitInitError
		return
	}

	src, err := os.ReadFile(cfg.Grammar)
	if err != nil {
		log.Printf("ERROR %v", err)
		returnCode = ExitInitError
		return
	}
	g, err := grammar.Load(string(src))
	if err != nil {
		log.Printf("ERROR %s: %v", cfg.Grammar, err)
		returnCode = ExitInitError
		return
	}

	if unreached := g.Unreachable(cfg.StartRules...); len(unreached) > 0 {
		for _, name := range unreached {
			log.Printf("WARN  rule %s cannot be reached from any start rule", name)
		}
	}

	if *flagTable {
		a := grammar.NewAnalysis(g, cfg.StartRules...)
		fmt.Println(a.Table(*flagWidth, pflag.Args()...))
		return
	}

	if *flagSample != "" {
		seed := *flagSeed
		if !pflag.Lookup("seed").Changed {
			seed = time.Now().UnixNano()
		}
		s := grammar.NewSampler(g, rand.New(rand.NewSource(seed)))
		for i := 0; i < *flagCount; i++ {
			sent, err := s.Sentence(*flagSample)
			if err != nil {
				log.Printf("ERROR %v", err)
				returnCode = ExitInitError
				return
			}
			fmt.Println(strings.Join(sent, " "))
		}
		return
	}

	out, err := codegen.Generate(g, cfg)
	if err != nil {
		log.Printf("ERROR %v", err)
		returnCode = ExitGenerateError
		return
	}

	for _, c := range out.Conflicts {
		if *flagStrict {
			log.Printf("ERROR conflict: %s", c)
		} else {
			log.Printf("WARN  conflict: %s", c)
		}
	}
	if *flagStrict && len(out.Conflicts) > 0 {
		returnCode = ExitGenerateError
		return
	}

	notLL1, err := grammar.NewAnalysis(g, cfg.StartRules...).CheckLL1()
	if err != nil {
		log.Printf("ERROR %v", err)
		returnCode = ExitGenerateError
		return
	}
	if len(out.Conflicts) == 0 && len(notLL1) > 0 {
		for _, start := range notLL1 {
			if *flagStrict {
				log.Printf("ERROR plain BNF of %s is not LL(1) although no conflicts were found", start)
			} else {
				log.Printf("WARN  plain BNF of %s is not LL(1) although no conflicts were found", start)
			}
		}
		if *flagStrict {
			returnCode = ExitGenerateError
			return
		}
	}

	files := []struct {
		path string
		src  []byte
	}{
		{cfg.Output.Rules, out.Rules},
		{cfg.Output.TreeKinds, out.TreeKinds},
		{cfg.Output.TokenKinds, out.TokenKinds},
	}

	for _, f := range files {
		if f.path == "" {
			continue
		}

		if *flagCheck {
			existing, err := os.ReadFile(f.path)
			if err != nil || !bytes.Equal(existing, f.src) {
				log.Printf("ERROR %s is out of date", f.path)
				returnCode = ExitOutOfDate
			}
			continue
		}

		if err := os.WriteFile(f.path, f.src, 0644); err != nil {
			log.Printf("ERROR %v", err)
			returnCode = ExitGenerateError
			return
		}
		log.Printf("INFO  wrote %s", f.path)
	}
}
