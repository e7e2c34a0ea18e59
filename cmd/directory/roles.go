package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles offered by the role filter",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(configPath)
		if err != nil {
			return err
		}
		return runRoles(cmd.OutOrStdout(), a.directory.Roles())
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(w io.Writer, roles []string) error {
	for _, role := range roles {
		if _, err := fmt.Fprintln(w, role); err != nil {
			return err
		}
	}
	return nil
}
