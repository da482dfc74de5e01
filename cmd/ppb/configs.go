package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	URL      string `cli:"name=url desc='override server URL'"`
	Token    string `cli:"name=token desc='override auth token'"`
	Server   string `cli:"name=server desc='use server config by name'"`
	Config   string `cli:"name=config desc='use custom config file'"`
	Init     bool   `cli:"name=init-config desc='write default config then exit'"`
	Verbose  bool   `cli:"name=v aliases=verbose desc='verbose output'"`
	Response bool   `cli:"name=r aliases=response desc='show server response'"`

	Main *cli.Command
}

// status writes the tool's verbose progress lines to stderr, colored
// when stderr is a terminal.
type status struct {
	w       io.Writer
	enabled bool
	mark    func(format string, a ...any) string
}

func newStatus(verbose bool) *status {
	s := &status{w: os.Stderr, enabled: verbose, mark: fmt.Sprintf}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		s.mark = color.New(color.FgCyan).Sprintf
	}
	return s
}

func (s *status) logf(format string, args ...any) {
	if !s.enabled {
		return
	}
	fmt.Fprintln(s.w, s.mark("[*] "+format, args...))
}

// noteWriter is handed to the config package, which writes soft-failure
// notes only when it gets a non-nil writer.
func (s *status) noteWriter() io.Writer {
	if !s.enabled {
		return nil
	}
	return s.w
}

func redact(token string) string {
	if token == "" {
		return "(not set)"
	}
	return "***"
}
