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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/strandio/strand/go/log"
	"github.com/strandio/strand/go/stream"
)

var (
	fromCharset    string
	toCharset      string
	decompressWith []string
	compressWith   []string
	chunkSize      int
	outputPath     string

	Transcode = &cobra.Command{
		Use:   "transcode [file]",
		Short: "Re-encodes a byte stream from one charset to another.",
		Long: "Reads the given file (or stdin), decodes it with the --from charset and\n" +
			"re-encodes it with the --to charset to stdout or --output. Compression\n" +
			"layers named in --decompress and --compress are stacked below the charsets.",
		Args: cobra.MaximumNArgs(1),
		RunE: commandTranscode,
	}
)

func commandTranscode(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	reader := stream.OpenReader(in, stream.Config{ChunkSize: chunkSize})
	defer reader.Close()
	for _, name := range decompressWith {
		if err := reader.PushLayer(name, stream.DirRead); err != nil {
			return fmt.Errorf("bad --decompress layer %q: %w", name, err)
		}
	}
	if err := reader.PushLayer(fromCharset, stream.DirRead); err != nil {
		return fmt.Errorf("bad --from charset %q: %w", fromCharset, err)
	}

	writer := stream.OpenWriter(out, stream.Config{})
	for _, name := range compressWith {
		if err := writer.PushLayer(name, stream.DirWrite); err != nil {
			return fmt.Errorf("bad --compress layer %q: %w", name, err)
		}
	}
	if err := writer.PushLayer(toCharset, stream.DirWrite); err != nil {
		return fmt.Errorf("bad --to charset %q: %w", toCharset, err)
	}

	values, bytesIn := 0, 0
	for {
		v, err := reader.ReadValue()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		values++
		bytesIn += len(v.Bytes())
		if err := writer.WriteValue(v); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}
	log.V(1).Infof("transcode: %d values, %d bytes decoded from %s", values, bytesIn, fromCharset)
	return nil
}

func init() {
	Transcode.Flags().StringVar(&fromCharset, "from", "utf-8", "charset the input is encoded with")
	Transcode.Flags().StringVar(&toCharset, "to", "utf-8", "charset to encode the output with")
	Transcode.Flags().StringSliceVar(&decompressWith, "decompress", nil, "transform layers to apply on the read side (zstd, gzip, lz4)")
	Transcode.Flags().StringSliceVar(&compressWith, "compress", nil, "transform layers to apply on the write side (zstd, gzip, lz4)")
	Transcode.Flags().IntVar(&chunkSize, "chunk-size", 0, "max bytes per channel read (0 = default)")
	Transcode.Flags().StringVarP(&outputPath, "output", "o", "", "write output to this file instead of stdout")
	Root.AddCommand(Transcode)
}
