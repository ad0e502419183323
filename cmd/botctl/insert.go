package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInsertCmd())
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file> <lnum>",
		Short: "Insert a new empty line immediately after lnum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(args)
		},
	}
}

func runInsert(args []string) error {
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}

	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	defer tr.Deinit()

	if err := tr.InsertAfter(lnum); err != nil {
		return err
	}
	return dumpTree(tr)
}
