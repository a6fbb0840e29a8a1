// Package subcmd selects lcdmenu mode by first command line argument.
// Each mode is a Mod with its own Main, all share flags and config.
package subcmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/state"
)

type Mod struct {
	Name string
	// one line for usage listing
	Doc  string
	Main func(context.Context, *state.Config) error
}

func Parse(command string, modules []Mod) (*Mod, error) {
	if command == "" {
		return nil, errors.NotValidf("empty command")
	}
	for i := range modules {
		m := &modules[i]
		if m.Name == "" || m.Main == nil {
			panic(fmt.Sprintf("code error subcmd Name='' or Main=nil module=%#v", m))
		}
		if command == m.Name {
			return m, nil
		}
	}
	return nil, errors.NotFoundf("command=%s", command)
}

// Usage writes command list aligned by name, for flag.FlagSet.Usage.
func Usage(w io.Writer, modules []Mod) {
	width := 0
	for _, m := range modules {
		if len(m.Name) > width {
			width = len(m.Name)
		}
	}
	fmt.Fprintf(w, "\nCommands:\n")
	for _, m := range modules {
		fmt.Fprintf(w, "  %-*s  %s\n", width, m.Name, m.Doc)
	}
}

// SdNotify reports state to systemd, false means not running under systemd.
func SdNotify(s string) bool {
	ok, err := daemon.SdNotify(false, s)
	if err != nil {
		log.Fatal("sdnotify: ", errors.ErrorStack(err))
	}
	return ok
}
