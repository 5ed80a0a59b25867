package repl

import (
	"bufio"
	"fmt"
	"io"
)

// RunPlain runs the REPL over plain reader and writer streams, one line
// at a time. It is used when stdin is not a terminal.
func RunPlain(in io.Reader, out io.Writer, session *Session, showPrompt bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		if showPrompt {
			fmt.Fprint(out, session.Prompt())
		}
		if !scanner.Scan() {
			break
		}

		res := session.Eval(scanner.Text())
		switch {
		case res.Err != nil:
			fmt.Fprintln(out, session.Diagnose(res.Err))
		case res.Message != "":
			fmt.Fprintln(out, res.Message)
		case res.Output != "":
			fmt.Fprintln(out, res.Output)
		}
		if res.Quit {
			return nil
		}
	}

	if showPrompt {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
