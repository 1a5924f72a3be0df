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

package command

import (
	"github.com/spf13/cobra"

	"github.com/strandio/strand/go/log"
)

var Root = &cobra.Command{
	Use:   "strand",
	Short: "strand transcodes byte streams between character sets.",
	Long: "`strand` is a command-line front end for the strand transcoding runtime.\n\n" +
		"It binds an IO layer stack to stdin and stdout: raw bytes are pulled through\n" +
		"optional decompression layers and a source charset layer, then pushed back out\n" +
		"through a target charset layer and optional compression layers.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(cmd.Flags())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Flush()
	},
}

func init() {
	log.RegisterFlags(Root.PersistentFlags())
}
