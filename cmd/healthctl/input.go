package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// prompt prints label and reads one trimmed line.
func (a *app) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// password reads a password without echo when stdin is a terminal, and as a
// plain line otherwise so scripts can pipe it in.
func (a *app) password(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return a.prompt(label)
	}
	fmt.Fprintf(a.out, "%s: ", label)
	pw, err := readPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// valueOrPrompt returns v, prompting for it when empty.
func (a *app) valueOrPrompt(v, label string) (string, error) {
	if v != "" {
		return v, nil
	}
	return a.prompt(label)
}
