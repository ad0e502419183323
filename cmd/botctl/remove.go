package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <lnum>",
		Short: "Remove a line, renumbering and reoffsetting every later line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
}

func runRemove(args []string) error {
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}

	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	defer tr.Deinit()

	if err := tr.Remove(lnum); err != nil {
		return err
	}
	return dumpTree(tr)
}
