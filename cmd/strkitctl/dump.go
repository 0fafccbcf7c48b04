package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/strkit/strbuf"
	"github.com/joshuapare/strkit/stream"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	var asText bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every record in a record file",
		Long: `dump materializes each record and prints it, one per line. With
--text, legacy Windows-1252 bytes are decoded to UTF-8 for display.

Example:
  strkitctl dump words.bin
  strkitctl dump words.bin --swap --text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], asText)
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "Decode legacy Windows-1252 bytes for display")
	return cmd
}

func runDump(path string, asText bool) error {
	ch, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer ch.Close()

	var records []string
	s := strbuf.New()
	for i := 0; ; i++ {
		if err := s.Deserialize(ch, swap); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("record %d: %w", i, err)
		}

		line := s.String()
		if asText {
			if line, err = s.Text(); err != nil {
				return fmt.Errorf("record %d: decode: %w", i, err)
			}
		}
		records = append(records, line)
	}

	if jsonOut {
		return printJSON(records)
	}
	for _, r := range records {
		fmt.Println(r)
	}
	return nil
}
