package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joshuapare/strkit/strbuf"
	"github.com/joshuapare/strkit/stream"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPackCmd())
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <textfile> <out>",
		Short: "Pack lines of text into a record file",
		Long: `pack reads the input line by line and writes each line as one
length-prefixed record.

Example:
  strkitctl pack words.txt words.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], args[1])
		},
	}
}

func runPack(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := stream.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	count := 0
	s := strbuf.New()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s.SetString(scanner.Text())
		if s.Len() > strbuf.MaxWireLen {
			return fmt.Errorf("line %d: %d bytes exceeds the record limit (%d)",
				count+1, s.Len(), strbuf.MaxWireLen)
		}
		if err := s.Serialize(out); err != nil {
			return fmt.Errorf("line %d: %w", count+1, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}

	printInfo("Packed %d records into %s\n", count, outPath)
	return nil
}
