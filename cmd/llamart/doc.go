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

// Command llamart drives the Llama runtime library from the command line.
//
// Usage:
//
//	llamart [flags] <command>
//
// Commands:
//
//	run <script>	run a call script against stdin and stdout
//	symbols		list the runtime primitives and their signatures
//	header		write the C header of the runtime
//
// Global flags:
//
//	--config filename
//		  load settings from a TOML file
//	--debug
//		  print stack traces with fatal errors
//	--log-level level
//		  diagnostic log level (trace, debug, info, warn, error, off)
//
// Flags of run:
//
//	--drain
//		  discard the rest of input lines that overflow read_string buffers
//	--raw
//		  switch a terminal stdin to raw mode, Ctrl-D ends input
//
// Settings are taken from the defaults, then the configuration file, then
// the LLAMART_LOG_LEVEL, LLAMART_LOG_NOCOLOR and LLAMART_DRAIN_LINES
// environment variables, then the command line. A sample configuration:
//
//	drain_lines = true
//	raw = false
//	debug = false
//	log_level = "info"
//	no_color = false
//
// A failed primitive stops the script. Its error is printed to stderr as
// "script:line:col: llama_<name>: cause" and llamart exits with status 1.
package main
