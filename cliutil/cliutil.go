// Package cliutil holds the small pieces of plumbing the CLI adapters
// (cmd/genibe, cmd/genprivatekey, cmd/benchmark) share: reading and
// writing the fixed param.txt/secret.txt files, mapping ibeerr kinds
// to process exit codes, and setting up the stderr logger the commands
// use for their single-line diagnostic. cliutil
// keeps the filenames as defaults but always takes the directory as a
// parameter, so callers (and tests) are not tied to the process's
// current working directory.
package cliutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/serialize"
)

const (
	// ParamsFileName is the fixed filename genibe writes public
	// parameters to.
	ParamsFileName = "param.txt"
	// SecretFileName is the fixed filename genibe writes the master
	// secret to.
	SecretFileName = "secret.txt"
)

// WriteSystem writes param.txt and secret.txt under dir.
func WriteSystem(dir string, params *ibe.Params, secret *ibe.Secret) error {
	if err := os.WriteFile(filepath.Join(dir, ParamsFileName), []byte(serialize.FormatParams(params)), 0o600); err != nil {
		return wrapIO(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SecretFileName), []byte(serialize.FormatSecret(secret)), 0o600); err != nil {
		return wrapIO(err)
	}
	return nil
}

// ReadSystem reads param.txt and secret.txt from dir.
func ReadSystem(dir string) (*ibe.Params, *ibe.Secret, error) {
	paramBytes, err := os.ReadFile(filepath.Join(dir, ParamsFileName))
	if err != nil {
		return nil, nil, wrapIO(err)
	}
	params, err := serialize.ParseParams(bytes.NewReader(paramBytes))
	if err != nil {
		return nil, nil, err
	}

	secretBytes, err := os.ReadFile(filepath.Join(dir, SecretFileName))
	if err != nil {
		return nil, nil, wrapIO(err)
	}
	secret, err := serialize.ParseSecret(string(secretBytes))
	if err != nil {
		return nil, nil, err
	}

	return params, secret, nil
}

func wrapIO(err error) error {
	return errors.Join(ibeerr.ErrIO, err)
}

// ExitCode maps an ibeerr sentinel to a distinct, stable non-zero
// process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ibeerr.ErrInvalidLevel):
		return 10
	case errors.Is(err, ibeerr.ErrRandomFailure):
		return 11
	case errors.Is(err, ibeerr.ErrParse):
		return 12
	case errors.Is(err, ibeerr.ErrShardMismatch):
		return 13
	case errors.Is(err, ibeerr.ErrDecryptionInvalid):
		return 14
	case errors.Is(err, ibeerr.ErrIO):
		return 15
	default:
		return 1
	}
}
