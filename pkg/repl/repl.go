package repl

// note: based off of csci1270-fall23
import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

var logger = log.New(os.Stdout, "", log.Ldate|log.Ltime|log.Lshortfile)

type REPL struct {
	Commands map[string]func(string, *REPLConfig) error
	Help     map[string]string
}

type REPLConfig struct {
	Writer io.Writer
}

func NewRepl() *REPL {
	r := &REPL{make(map[string]func(string, *REPLConfig) error), make(map[string]string)}
	return r
}

// Add a command, along with its help string, to the set of commands
func (r *REPL) AddCommand(trigger string, handler func(string, *REPLConfig) error, help string) {
	if trigger == "" || trigger[0] == '.' {
		return
	}
	r.Help[trigger] = help
	r.Commands[trigger] = handler
}

func (r *REPL) triggers() []string {
	keys := make([]string, 0, len(r.Commands))
	for k := range r.Commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Return all REPL usage information as a string
func (r *REPL) HelpString() string {
	var sb strings.Builder
	sb.WriteString("Commands\n")
	for _, k := range r.triggers() {
		sb.WriteString(fmt.Sprintf("\t%s: %s\n", k, r.Help[k]))
	}
	return sb.String()
}

// Exec runs a single input line. Unknown commands print the help text.
// The handler's error is reported to the writer and also returned.
func (r *REPL) Exec(input string, config *REPLConfig) error {
	command := strings.Split(input, " ")[0]
	handler, ok := r.Commands[command]
	if !ok {
		io.WriteString(config.Writer, fmt.Sprintf("Invalid command: %s\n", command))
		io.WriteString(config.Writer, r.HelpString())
		return fmt.Errorf("invalid command: %s", command)
	}

	err := handler(input, config)
	if err != nil {
		io.WriteString(config.Writer, fmt.Sprintf("Error: %v\n", err))
	}
	return err
}

func (r *REPL) completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(r.Commands))
	for _, k := range r.triggers() {
		items = append(items, readline.PcItem(k))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run reads commands from the terminal until EOF, or ^C on an empty line.
func (r *REPL) Run() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		AutoComplete:    r.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Printf("Could not start the terminal: %v\n", err)
		return
	}
	defer rl.Close()

	replConfig := &REPLConfig{Writer: rl.Stdout()}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err != nil {
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		r.Exec(input, replConfig)
	}
}
