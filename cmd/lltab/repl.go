package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/lltab/ll/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines entered interactively",
		Long: `repl starts an interactive session. Every line entered is parsed with the
expression grammar and the parse tree is printed. Lines starting with a colon
are commands:
  :events on|off   print node sequences instead of trees
  :trim on|off     drop empty non-terminals from trees
  :table           print the parse table
  :quit            end the session`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.init = cmd.Flags().String("init", "", "file with lines to evaluate before going interactive")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	table, err := makeExprGrammar().ParseTable()
	if err != nil {
		return err
	}
	repl, err := readline.New(conf.Prompt)
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		table: table,
		repl:  repl,
		trim:  conf.Trim,
	}
	pterm.Info.Println("Welcome to lltab")
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	table  *ll.ParseTable
	repl   *readline.Instance
	trim   bool
	events bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: "+err.Error(), lineno)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line, which is either a command or input to parse.
func (intp *Intp) Eval(line string) (quit bool, err error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	defer func() {
		if r := recover(); r != nil { // panic-on-syntax-error is set
			err = fmt.Errorf("%v", r)
		}
	}()
	p, err := newParser(intp.table, scanner.StringSource(line))
	if err != nil {
		return false, err
	}
	if intp.events {
		printEvents(p)
	} else {
		printTree(p.ParseSubtree(intp.trim))
	}
	tracer().Infof("%d syntax error(s)", p.ErrorCount())
	return false, nil
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("empty command")
	}
	switch args[0] {
	case "q", "quit":
		return true, nil
	case "table":
		printTable(intp.table)
	case "trim", "events":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :%s on|off", args[0])
		}
		if args[0] == "trim" {
			intp.trim = args[1] == "on"
		} else {
			intp.events = args[1] == "on"
		}
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}
