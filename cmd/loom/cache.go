package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk tree cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove every cached tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tc, err := st.treeCache()
			if err != nil {
				return err
			}
			if err := tc.DropAll(); err != nil {
				return fmt.Errorf("failed to clean %s: %w", tc.Dir(), err)
			}
			if !quiet(cmd) {
				fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", tc.Dir())
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tc, err := st.treeCache()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tc.Dir())
			return err
		},
	})
	return cmd
}
