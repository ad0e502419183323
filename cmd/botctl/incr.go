package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newIncrCmd())
	rootCmd.AddCommand(newDecrCmd())
}

func newIncrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incr <file> <lnum> <delta>",
		Short: "Shift a line's offset by delta, propagating to later lines",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncr(args, 1)
		},
	}
}

func newDecrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decr <file> <lnum> <delta>",
		Short: "Shift a line's offset by -delta, propagating to later lines",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncr(args, -1)
		},
	}
}

func runIncr(args []string, sign int64) error {
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}
	delta, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", args[2], err)
	}

	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	defer tr.Deinit()

	if err := tr.Incr(lnum, sign*delta); err != nil {
		return err
	}
	return dumpTree(tr)
}
