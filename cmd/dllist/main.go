// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Command dllist runs demonstrations of the dllist package.
//
// Usage:
//
//	dllist hello [greeting]  asks for a name and greets it
//	dllist list              runs the list demonstrations
//	dllist addrs <ip>...     stores addresses in a list and walks it
package main

import (
	"io"
	"os"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"github.com/cihub/seelog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DataDog/dllist-go/internal/config"
	"github.com/DataDog/dllist-go/internal/demo"
	"github.com/DataDog/dllist-go/internal/greet"
	"github.com/DataDog/dllist-go/log"
)

const logFormat = "%Date(2006-01-02 15:04:05 MST) | dllist | %LEVEL | %Msg%n"

// errInvalidOption is returned for unknown or missing commands.
var errInvalidOption = errors.New("invalid option")

func main() {
	// A missing .env file is fine, the environment is used as-is then.
	envErr := godotenv.Load()

	cfg := config.New()
	if err := setupLogger(os.Stderr, cfg.LogLevel); err != nil {
		os.Stderr.WriteString("dllist: could not set up logger: " + err.Error() + "\n")
	}
	if envErr != nil {
		log.Debug("dllist: no .env file loaded: %v", envErr)
	}

	code := run(os.Args[1:], cfg, os.Stdin, os.Stdout)
	ddlog.Flush()
	os.Exit(code)
}

// setupLogger points the datadog-agent logger at w, filtering out messages
// below level.
func setupLogger(w io.Writer, level string) error {
	logger, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, logFormat)
	if err != nil {
		return err
	}
	ddlog.SetupLogger(logger, level)
	return nil
}

// run dispatches args to the matching command and returns the process exit
// code.
func run(args []string, cfg config.Config, in io.Reader, out io.Writer) int {
	if err := dispatch(args, cfg, in, out); err != nil {
		if errors.Is(err, errInvalidOption) {
			io.WriteString(out, "invalid option\n")
		}
		_ = log.Errorf("dllist: %v", err)
		return 1
	}
	return 0
}

func dispatch(args []string, cfg config.Config, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(errInvalidOption, "no command given")
	}

	switch cmd := args[0]; cmd {
	case "hello":
		greeting := cfg.Greeting
		if len(args) > 1 {
			greeting = args[1]
		}
		return errors.Wrap(greet.Hello(in, out, greeting), "hello")

	case "list":
		log.Info("dllist: running list demonstrations with %d values", cfg.DemoCount)
		demo.Run(out, cfg.DemoCount)
		return nil

	case "addrs":
		return errors.Wrap(demo.Addrs(out, args[1:]), "addrs")

	default:
		return errors.Wrapf(errInvalidOption, "unknown command %q", cmd)
	}
}
