package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <lnum> <offset>",
		Short: "Move a line to an absolute offset, shifting later lines by the same delta",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}
	off, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[2], err)
	}

	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	defer tr.Deinit()

	if err := tr.Set(lnum, off); err != nil {
		return err
	}
	return dumpTree(tr)
}
