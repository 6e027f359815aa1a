// Package authflow asks the user for the Discord credentials in the terminal.
package authflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var ErrNoToken = errors.New("no token entered")

var (
	italic    = color.New(color.Italic)
	param     = color.New(color.Italic, color.FgBlue, color.BgHiWhite)
	warn      = color.New(color.FgHiRed)
	underline = color.New(color.Underline)

	line = strings.Repeat("-=", 40)
)

// TermAuth implements authentication via terminal.
type TermAuth struct {
	token string
	in    *os.File
	out   io.Writer
}

func NewTermAuth(token string) TermAuth {
	return TermAuth{token: token, in: os.Stdin, out: os.Stdout}
}

// Token returns the token given to NewTermAuth, or asks the user to enter
// one.  The input is hidden if stdin is a terminal.
func (a TermAuth) Token(ctx context.Context) (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	fd := int(a.in.Fd())
	if !term.IsTerminal(fd) {
		// piped: echo "$TOKEN" | wipemydiscord -list
		return nonEmpty(readln(a.in))
	}
	instructions(a.out)
	fmt.Fprintf(a.out, "Enter Discord %s (won't be shown): ", param.Sprint(" token "))
	defer fmt.Fprintln(a.out)
	return nonEmpty(readpass(ctx, fd))
}

func nonEmpty(s string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return s, nil
		}
		return "", err
	}
	if s == "" {
		return "", ErrNoToken
	}
	return s, nil
}

func instructions(w io.Writer) {
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "To get your Discord token:\n\n")
	fmt.Fprintf(w, "\t1.  Open Discord in the browser and log in;\n")
	fmt.Fprintf(w, "\t2.  Open %s (F12) and switch to the %s tab;\n", underline.Sprint("Developer Tools"), underline.Sprint("Network"))
	fmt.Fprintf(w, "\t3.  Click any channel and select a request to %s;\n", italic.Sprint("discord.com/api"))
	fmt.Fprintf(w, "\t4.  Copy the value of the %s request header.\n\n", underline.Sprint("Authorization"))
	fmt.Fprintf(w, "The token is never saved.  Bot tokens require the -bot flag.\n\n")
	warn.Fprintf(w, "VERY IMPORTANT: This is the key to your account, keep it secret, never share\n"+
		"it with anyone, never publish it online.\n")
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}

// readln reads one line from r.  The last line may have no line feed, in
// which case it is returned together with io.EOF.
func readln(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), err
}

func readpass(_ context.Context, fd int) (string, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	bytePwd, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytePwd)), nil
}
