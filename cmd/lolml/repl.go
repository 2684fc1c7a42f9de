package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/lolml/lolml/core"
	"github.com/pterm/pterm"
)

// repl starts interactive mode. Lines are buffered until the program
// closer #KTHXBYE appears, then the buffered snippet is compiled and the
// HTML printed. 'quit' or ctrl-D leave the loop.
func repl() {
	rl, err := readline.New("lol > ")
	if err != nil {
		tracer().Errorf(err.Error())
		return
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to lolml. End snippets with #KTHXBYE, quit with 'quit' or <ctrl>D")

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "quit" {
			break
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		if !strings.Contains(strings.ToUpper(buf.String()), "#KTHXBYE") {
			rl.SetPrompt("  ... ")
			continue
		}
		snippet := buf.String()
		buf.Reset()
		rl.SetPrompt("lol > ")
		htmltext, err := compile(snippet)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		pterm.Println(htmltext)
	}
	pterm.Info.Println("Good bye!")
}
