package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Inspect the offline dictionary",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a single word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			resolver, err := newResolver(cfg)
			if err != nil {
				return err
			}

			kannada, found := resolver.Lookup(word)
			if !found {
				return fmt.Errorf("no dictionary entry for %q", word)
			}
			fmt.Fprintln(cmd.OutOrStdout(), kannada)
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every dictionary entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			resolver, err := newResolver(cfg)
			if err != nil {
				return err
			}

			for _, entry := range resolver.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", entry.English, entry.Kannada)
			}
			return nil
		},
	})

	return &rootCommand
}
