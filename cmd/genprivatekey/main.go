// Command genprivatekey reads param.txt/secret.txt from the current
// directory and prints the identifier followed by its private-key
// text form.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bf5091/ibe/bf"
	"github.com/bf5091/ibe/cliutil"
)

var log = cliutil.SetupLogging("genprivatekey")

func main() {
	app := &cli.App{
		Name:      "genprivatekey",
		Usage:     "derive a private key for an identifier from param.txt/secret.txt",
		ArgsUsage: "<identifier>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(cliutil.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: genprivatekey <identifier>")
	}
	identifier := c.Args().Get(0)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	params, secret, err := cliutil.ReadSystem(dir)
	if err != nil {
		return err
	}

	system := &bf.System{Params: params, Secret: secret}
	key, err := system.ExtractKey(identifier)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", identifier, key)
	return nil
}
