// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package greet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Prompt is printed before reading the name.
const Prompt = "Who are you?"

// Hello asks for a name on in, and greets it on out using greeting.
func Hello(in io.Reader, out io.Writer, greeting string) error {
	if _, err := fmt.Fprintln(out, Prompt); err != nil {
		return errors.Wrap(err, "write prompt")
	}

	name, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read name")
	}
	name = strings.TrimRight(name, "\r\n")
	if name == "" {
		return errors.New("no name given")
	}

	_, err = fmt.Fprintf(out, "%s, %s\n", greeting, name)
	return errors.Wrap(err, "write greeting")
}
