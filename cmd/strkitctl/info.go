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
	rootCmd.AddCommand(newInfoCmd())
}

type fileInfo struct {
	File    string `json:"file"`
	Records int    `json:"records"`
	Payload int64  `json:"payloadBytes"`
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a record file",
		Long: `info walks a record file and reports how many records it holds and
how many payload bytes they carry in total.

Example:
  strkitctl info words.bin
  strkitctl info words.bin --swap --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	printVerbose("Opening record file: %s\n", path)

	ch, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer ch.Close()

	info := fileInfo{File: path}
	scratch := strbuf.New()
	for {
		if err := scratch.Deserialize(ch, swap); err != nil {
			// A clean EOF on the prefix read is the end of the file;
			// a partial prefix or payload surfaces as ErrUnexpectedEOF.
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("record %d: %w", info.Records, err)
		}
		info.Payload += int64(scratch.Len())
		info.Records++
	}

	if jsonOut {
		return printJSON(info)
	}
	printInfo("File:    %s\n", info.File)
	printInfo("Records: %d\n", info.Records)
	printInfo("Payload: %d bytes\n", info.Payload)
	return nil
}
