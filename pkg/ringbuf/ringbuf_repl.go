package ringbuf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ringbuf/pkg/repl"
)

func BufRepl(rb *RingBuffer) *repl.REPL {
	r := repl.NewRepl()
	r.AddCommand("push", pushHandler(rb), "Pushes one byte, dropping the oldest if full. usage: push <c>")
	r.AddCommand("pop", popHandler(rb), "Pops the oldest byte. usage: pop")
	r.AddCommand("write", writeHandler(rb), "Writes the rest of the line, only if it fits. usage: write <text>")
	r.AddCommand("read", readHandler(rb), "Reads up to n bytes. usage: read <n>")
	r.AddCommand("peek", peekHandler(rb), "Shows the unread bytes without consuming them. usage: peek")
	r.AddCommand("stat", statHandler(rb), "Shows capacity, length and cursors. usage: stat")
	r.AddCommand("slots", slotsHandler(rb), "Lists every storage slot. usage: slots")
	r.AddCommand("reset", resetHandler(rb), "Discards all content. usage: reset")

	return r
}

func pushHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Split(input, " ")
		if len(args) != 2 || len(args[1]) != 1 {
			return fmt.Errorf("usage: push <c>")
		}
		rb.Push(args[1][0])
		return nil
	}
}

func popHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Split(input, " ")
		if len(args) != 1 {
			return fmt.Errorf("usage: pop")
		}
		c, ok := rb.Pop()
		if !ok {
			_, err := io.WriteString(config.Writer, "(empty)\n")
			return err
		}
		_, err := io.WriteString(config.Writer, strconv.QuoteToASCII(string([]byte{c}))+"\n")
		return err
	}
}

func writeHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.SplitN(input, " ", 2)
		if len(args) != 2 {
			return fmt.Errorf("usage: write <text>")
		}
		n, err := rb.Write([]byte(args[1]))
		if err != nil {
			return err
		}
		_, err = io.WriteString(config.Writer, fmt.Sprintf("Wrote %d bytes\n", n))
		return err
	}
}

func readHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		args := strings.Split(input, " ")
		if len(args) != 2 {
			return fmt.Errorf("usage: read <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		data, err := rb.Read(n)
		if err != nil {
			return err
		}
		_, err = io.WriteString(config.Writer, strconv.QuoteToASCII(string(data))+"\n")
		return err
	}
}

func peekHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, strconv.QuoteToASCII(string(rb.Bytes()))+"\n")
		return err
	}
}

func statHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, rb.StateString())
		return err
	}
}

func slotsHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		_, err := io.WriteString(config.Writer, "Slot\tByte\tCursor\n")
		if err != nil {
			return fmt.Errorf("slotsHandler cannot write the header")
		}
		for _, slot := range rb.GetSlotsString() {
			_, err := io.WriteString(config.Writer, slot)
			if err != nil {
				return fmt.Errorf("slotsHandler cannot write slots")
			}
		}
		return nil
	}
}

func resetHandler(rb *RingBuffer) func(string, *repl.REPLConfig) error {
	return func(input string, config *repl.REPLConfig) error {
		rb.Reset()
		return nil
	}
}
