// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/Renelvon/llama/internal/logging"
	"github.com/Renelvon/llama/rt"
	"github.com/Renelvon/llama/script"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const eot = 4 // Ctrl-D

func newRunCmd() *cobra.Command {
	var drain, raw bool
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a call script against stdin and stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("drain") {
				cfg.DrainLines = drain
			}
			if cmd.Flags().Changed("raw") {
				cfg.Raw = raw
			}
			return runScript(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&drain, "drain", false, "discard the rest of lines that overflow read_string buffers")
	cmd.Flags().BoolVar(&raw, "raw", false, "switch a terminal stdin to raw mode")
	return cmd
}

func runScript(cmd *cobra.Command, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	prog, err := script.Parse(name, f)
	f.Close()
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.NoColor)
	in, tearDown := setupInput(cmd.InOrStdin(), cfg.Raw, log)
	defer tearDown()

	r, err := rt.New(
		rt.Input(in),
		rt.Output(cmd.OutOrStdout()),
		rt.DrainLines(cfg.DrainLines),
		rt.Logger(log))
	if err != nil {
		return err
	}
	log.Debug().Str("script", name).Int("vars", len(prog.Vars())).Msg("running")
	return prog.Exec(r)
}

// setupInput switches in to raw mode if requested and in is a terminal. Raw
// input is not line buffered by the tty, so Ctrl-D is handled here.
func setupInput(in io.Reader, raw bool, log zerolog.Logger) (io.Reader, func()) {
	nop := func() {}
	if !raw {
		return in, nop
	}
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return in, nop
	}
	tearDown, err := setRawIO(f.Fd())
	if err != nil {
		log.Warn().Err(err).Msg("raw mode unavailable")
		return in, nop
	}
	return &eotReader{r: f}, tearDown
}

// eotReader reports io.EOF once an EOT byte is read.
type eotReader struct {
	r   io.Reader
	eof bool
}

func (e *eotReader) Read(p []byte) (int, error) {
	if e.eof {
		return 0, io.EOF
	}
	n, err := e.r.Read(p)
	if i := bytes.IndexByte(p[:n], eot); i >= 0 {
		e.eof = true
		if i == 0 {
			return 0, io.EOF
		}
		return i, nil
	}
	return n, err
}
