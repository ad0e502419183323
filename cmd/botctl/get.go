package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <lnum>",
		Short: "Print the byte offset at which a line begins",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}

	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	defer tr.Deinit()

	printVerbose("loaded %d lines from %s\n", tr.Len(), args[0])
	off, err := tr.Get(lnum)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSONLine(lnum, off)
	}
	fmt.Println(off)
	return nil
}
