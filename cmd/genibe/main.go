// Command genibe generates a fresh PKG at the given security level
// (default 3) and writes param.txt and secret.txt in the current
// directory.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/bf5091/ibe/bf"
	"github.com/bf5091/ibe/cliutil"
)

var log = cliutil.SetupLogging("genibe")

func main() {
	app := &cli.App{
		Name:      "genibe",
		Usage:     "generate a Boneh-Franklin IBE system and write param.txt/secret.txt",
		ArgsUsage: "[level]",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(cliutil.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	level := 3
	if c.NArg() > 0 {
		parsed, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("invalid level %q", c.Args().Get(0))
		}
		level = parsed
	}

	log.Infof("generating IBE system at level %d", level)
	system, err := bf.GenerateSystem(level)
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := cliutil.WriteSystem(dir, system.Params, system.Secret); err != nil {
		return err
	}

	log.Noticef("wrote %s and %s", cliutil.ParamsFileName, cliutil.SecretFileName)
	return nil
}
