package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/console"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/run"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/subcmd"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/state"
)

var log = log2.NewStderr(log2.LDebug)

var modules = []subcmd.Mod{
	run.Mod,
	console.Mod,
}

func main() {
	flagset := flag.NewFlagSet("lcdmenu", flag.ContinueOnError)
	flagConfig := flagset.String("config", "lcdmenu.hcl", "")
	flagLog := flagset.String("log", "debug", "error|info|debug")
	flagset.Usage = func() {
		fmt.Fprintf(flagset.Output(), "Usage: lcdmenu [options] command\n\nOptions:\n")
		flagset.PrintDefaults()
		subcmd.Usage(flagset.Output(), modules)
	}
	if err := flagset.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	mod, err := subcmd.Parse(flagset.Arg(0), modules)
	if err != nil {
		flagset.Usage()
		log.Fatal(err)
	}

	if subcmd.SdNotify("start") {
		// under systemd, assume journal logging, remove timestamp
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}
	level, err := log2.ParseLevel(*flagLog)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	log.SetLevel(level)

	ctx, _ := state.NewContext(log)
	config := state.MustReadConfig(log, state.NewOsFullReader(), *flagConfig)

	log.Infof("lcdmenu %s start", mod.Name)
	if err := mod.Main(ctx, config); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}
