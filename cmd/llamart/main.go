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
	"os"

	"github.com/Renelvon/llama/internal/config"
	"github.com/Renelvon/llama/rt"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	debug    bool
	logLevel string
	cfg      config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "llamart",
		Short:             "Llama runtime driver",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "load settings from TOML `filename`")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print stack traces with fatal errors")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log `level`")
	root.AddCommand(newRunCmd(), newSymbolsCmd(), newHeaderCmd())
	return root
}

// loadConfig layers the configuration file, the environment and the global
// flags into cfg.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	config.ApplyEnv(&c)
	flags := cmd.Flags()
	if flags.Changed("debug") {
		c.Debug = debug
	}
	if flags.Changed("log-level") {
		if c.LogLevel, err = config.ParseLevel(logLevel); err != nil {
			return err
		}
	}
	cfg = c
	debug = c.Debug
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		rt.Fatal(os.Stderr, os.Exit, debug)(err)
	}
}
