/*
Copyright 2026 The Strand Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a thin adapter around glog with optional
// structured logging via slog.
//
// By default, it uses glog and its flags. Structured logging is enabled
// only when the --log-fmt flag is explicitly set.
package log

import (
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

// Level is the glog verbosity level.
type Level = glog.Level

// The glog passthroughs. Verbosity-gated logging goes through V.
var (
	Info     = glog.Info
	Infof    = glog.Infof
	Warning  = glog.Warning
	Warningf = glog.Warningf
	Error    = glog.Error
	Errorf   = glog.Errorf
	Exit     = glog.Exit
	Exitf    = glog.Exitf
	Fatal    = glog.Fatal
	Fatalf   = glog.Fatalf
	V        = glog.V
)

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", "json", "format for structured logging output: json or logfmt")
	fs.StringVar(&logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}
