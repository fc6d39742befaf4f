// Package marlin contains a CLI-driven engine that reads SPARQL queries and
// updates from an input stream, parses them, and reports their syntax trees
// and errors until the user quits.
package marlin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/internal/input"
	"github.com/dekarrin/marlin/internal/mlerrors"
	"github.com/dekarrin/marlin/parse"
	"github.com/dekarrin/rosed"
)

const (
	consoleOutputWidth = 80

	promptFirst    = "> "
	promptContinue = "| "

	// a line ending with this ends the current statement
	statementEnd = ";;"
)

// Engine contains the things needed to run a parse session from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	in          input.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool

	analysis *grammar.Analysis
	mode     parse.Mode
	showTree bool
	pending  []string
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and
// a buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is used for input only when reading
// stdin and writing stdout and forceDirectInput is not set.
func New(inputStream io.Reader, outputStream io.Writer, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	eng := &Engine{
		out:         bufio.NewWriter(outputStream),
		forceDirect: forceDirectInput,
		analysis:    grammar.NewAnalysis(grammar.SPARQL(), "QueryUnit", "UpdateUnit"),
		mode:        parse.Query,
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		eng.in, err = input.NewInteractiveReader(promptFirst)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}

	return nil
}

// Mode returns what the engine currently parses statements as.
func (eng *Engine) Mode() parse.Mode {
	return eng.mode
}

// SetMode sets what the engine parses statements as.
func (eng *Engine) SetMode(m parse.Mode) {
	eng.mode = m
}

// RunUntilQuit begins reading statements and commands from the streams until
// the :quit command is received or input ends. A statement still being
// entered when input ends is parsed before returning.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "Marlin SPARQL parse shell\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "=========================\n"
	introMsg += "End a statement with ;; or a blank line. Type :help for commands.\n"
	introMsg += "\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadLine()
		if errors.Is(err, input.ErrInterrupt) {
			eng.discardPending()
			if err := eng.write("(statement discarded)\n"); err != nil {
				return err
			}
			continue
		}
		if err == io.EOF {
			if len(eng.pending) > 0 {
				if err := eng.submit(); err != nil {
					return err
				}
			}
			break
		}
		if err != nil {
			return fmt.Errorf("get user input: %w", err)
		}

		if err := eng.handleLine(line); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

// handleLine takes one line of input. Only errors writing output are
// returned; problems with the input itself are shown to the user.
func (eng *Engine) handleLine(line string) error {
	if len(eng.pending) == 0 && strings.HasPrefix(line, ":") {
		if err := eng.execute(line); err != nil {
			msg := rosed.Edit(mlerrors.ConsoleMessage(err)).Wrap(consoleOutputWidth).String()
			return eng.write(msg + "\n")
		}
		return nil
	}

	if line == "" {
		if len(eng.pending) == 0 {
			return nil
		}
		return eng.submit()
	}

	if strings.HasSuffix(line, statementEnd) {
		eng.pending = append(eng.pending, strings.TrimSuffix(line, statementEnd))
		return eng.submit()
	}

	eng.pending = append(eng.pending, line)
	eng.in.AllowBlank(true)
	eng.in.SetPrompt(promptContinue)
	return nil
}

func (eng *Engine) discardPending() {
	eng.pending = nil
	eng.in.AllowBlank(false)
	eng.in.SetPrompt(promptFirst)
}

// submit parses the pending statement and shows the results.
func (eng *Engine) submit() error {
	src := strings.Join(eng.pending, "\n")
	eng.discardPending()

	res := parse.ParseAs(eng.mode, src)

	var sb strings.Builder
	for _, d := range res.Diagnostics {
		sb.WriteString(rosed.Edit(d.Format(src)).Wrap(consoleOutputWidth).String())
		sb.WriteRune('\n')
	}

	if res.OK() {
		sb.WriteString(fmt.Sprintf("OK (%s)\n", eng.mode))
	} else {
		sb.WriteString(fmt.Sprintf("%d syntax error(s) (%s)\n", len(res.Diagnostics), eng.mode))
	}

	if eng.showTree {
		sb.WriteString(res.Tree.String())
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteRune('\n')
		}
	}

	return eng.write(sb.String())
}

// execute carries out a shell command.
func (eng *Engine) execute(line string) error {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case ":quit", ":q", ":exit":
		eng.running = false
		return nil
	case ":tree":
		eng.showTree = !eng.showTree
		state := "off"
		if eng.showTree {
			state = "on"
		}
		return eng.write(fmt.Sprintf("Tree display is %s\n", state))
	case ":query", ":update":
		eng.mode, _ = parse.ParseMode(cmd[1:])
		return eng.write(fmt.Sprintf("Now parsing statements as SPARQL %ss\n", eng.mode))
	case ":first":
		if len(args) != 1 {
			return mlerrors.Consolef("Usage: :first RULE")
		}
		if _, ok := eng.analysis.Grammar().Rule(args[0]); !ok {
			return mlerrors.Consolef("There is no grammar rule named %q. Rule names are case-sensitive, such as GroupGraphPattern.", args[0])
		}
		return eng.write(eng.analysis.Table(consoleOutputWidth, args[0]) + "\n")
	case ":help":
		return eng.write(helpText)
	default:
		return mlerrors.Consolef("Unknown command %q. Type :help for a list of commands.", fields[0])
	}
}

const helpText = `Type a SPARQL statement over one or more lines. It is parsed when a line ends
with ;; or a blank line is entered.

Commands:
  :query        parse statements as queries (the default)
  :update       parse statements as update requests
  :tree         toggle printing the syntax tree of each statement
  :first RULE   show whether a grammar rule is nullable, and its FIRST and
                FOLLOW sets
  :help         show this help
  :quit         leave the shell
`

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
