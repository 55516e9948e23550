// Command benchmark exercises security levels 1..5 and prints
// setup/extract/encrypt/decrypt timings. Timing is expressed with
// time.Now/time.Since rather than testing.B, since this runs as a
// standalone CLI command rather than a `go test -bench` target.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bf5091/ibe/bf"
	"github.com/bf5091/ibe/cliutil"
)

var log = cliutil.SetupLogging("benchmark")

func main() {
	app := &cli.App{
		Name:   "benchmark",
		Usage:  "time setup/extract/encrypt/decrypt across security levels 1..5",
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(cliutil.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	const identifier = "bench@example.com"
	payload := make([]byte, 32)

	fmt.Printf("%-6s %12s %12s %12s %12s\n", "level", "setup", "extract", "encrypt", "decrypt")
	for level := 1; level <= 5; level++ {
		setupStart := time.Now()
		system, err := bf.GenerateSystem(level)
		if err != nil {
			return err
		}
		setupElapsed := time.Since(setupStart)

		extractStart := time.Now()
		keyText, err := system.ExtractKey(identifier)
		if err != nil {
			return err
		}
		extractElapsed := time.Since(extractStart)

		encryptStart := time.Now()
		ciphertext, err := bf.Encrypt(system.Params, identifier, payload)
		if err != nil {
			return err
		}
		encryptElapsed := time.Since(encryptStart)

		decryptStart := time.Now()
		plaintext, err := bf.Decrypt(system.Params, keyText, ciphertext)
		if err != nil {
			return err
		}
		decryptElapsed := time.Since(decryptStart)

		if string(plaintext) != string(payload) {
			return fmt.Errorf("level %d: round-trip mismatch", level)
		}
		fmt.Printf("%-6d %12s %12s %12s %12s\n", level, setupElapsed, extractElapsed, encryptElapsed, decryptElapsed)
	}
	return nil
}
