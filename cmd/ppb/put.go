package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/epa-st/ppb/config"
	"github.com/epa-st/ppb/upload"
)

func put(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: ppb reads stdin and takes no arguments", cli.ErrUsage)
	}
	st := newStatus(cfg.Verbose)
	path := config.Resolve(cfg.Config)

	if cfg.Init {
		if path == "" {
			return fmt.Errorf("no config path resolved; use -config to specify one")
		}
		created, err := config.WriteDefault(path)
		if err != nil {
			return fmt.Errorf("could not write default config to %s: %w", path, err)
		}
		if created {
			st.logf("created default config at %s", path)
		} else {
			st.logf("config already exists at %s", path)
		}
		return nil
	}

	config.EnsureDefault(path, st.noteWriter())
	c := config.Default()
	if path != "" {
		st.logf("loading config from %s", path)
		config.Load(&c, path, cfg.Server, st.noteWriter())
	}
	c.FromEnv(os.Getenv)
	c.Override(cfg.URL, cfg.Token)

	st.logf("URL: %s", c.URL)
	st.logf("Token: %s", redact(c.Token))
	if c.Token == "" {
		return fmt.Errorf("token is not set; use -token, PPB_TOKEN, or config file")
	}

	st.logf("initializing upload...")
	res, err := upload.Put(context.Background(), nil, c.URL, c.Token, cc.In)
	if err != nil && !errors.Is(err, upload.ErrUnauthorized) {
		return err
	}
	st.logf("HTTP status: %d", res.Status)
	if cfg.Response && len(res.Body) > 0 {
		fmt.Fprintf(cc.Out, "%s\n", res.Body)
	}
	if err != nil {
		return err
	}
	if !res.OK() {
		st.logf("upload failed")
		return cli.ExitCodeErr(1)
	}
	st.logf("upload successful")
	return nil
}
