package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "ppb").
		WithSynopsis("ppb [opts] < file").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return put(cfg, cc, args)
		})
}

const description = `ppb uploads stdin to a paste server and prints the result.

The server URL and auth token are resolved with the precedence

  flags > environment > config file > defaults

Environment variables:
  PPB_URL              server URL
  PPB_TOKEN            auth token

Config files (checked in order):
  .ppb-config.json
  ~/.ppb/config.json

Usage example:
  cat file.txt | ppb -server prod -r`
