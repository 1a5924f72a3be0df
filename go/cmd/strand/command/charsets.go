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
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strandio/strand/go/charset"
)

var Charsets = &cobra.Command{
	Use:   "charsets",
	Short: "Lists the registered charsets and their aliases.",
	Args:  cobra.NoArgs,
	RunE:  commandCharsets,
}

func commandCharsets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMAX BYTES\tSUPPLEMENTARY\tALIASES")
	for _, name := range charset.Names() {
		cs, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%s\n",
			cs.Name(), cs.MaxWidth(), cs.SupportsSupplementaryChars(),
			strings.Join(charset.AliasesOf(cs), ", "))
	}
	return w.Flush()
}

func init() {
	Root.AddCommand(Charsets)
}
