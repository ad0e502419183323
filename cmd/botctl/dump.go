package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the line/offset table for a file without mutating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := loadTree(args[0])
			if err != nil {
				return err
			}
			defer tr.Deinit()
			return dumpTree(tr)
		},
	}
}
