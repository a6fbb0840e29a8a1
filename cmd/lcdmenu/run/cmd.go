// Production mode: LCD and buttons from config, supervised by systemd.
package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/appliance"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/subcmd"
	"github.com/temoto/lcdmenu/state"
	"github.com/temoto/lcdmenu/ui"
)

var Mod = subcmd.Mod{
	Name: "run",
	Doc:  "drive LCD and buttons from config, systemd service",
	Main: Main,
}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)
	defer g.Close()
	g.Log.Debugf("config=%+v", g.Config)

	m, err := appliance.New(g.Log).Build(ctx, config)
	if err != nil {
		return err
	}
	u := &ui.UI{}
	if err := u.Init(ctx, m.Root); err != nil {
		return errors.Annotate(err, "ui init")
	}

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigch
		g.Log.Infof("signal=%v stopping", s)
		subcmd.SdNotify(daemon.SdNotifyStopping)
		g.Alive.Stop()
	}()

	subcmd.SdNotify(daemon.SdNotifyReady)
	g.Log.Debugf("lcdmenu init complete")
	u.Loop(ctx)
	g.Alive.Wait()
	return nil
}
