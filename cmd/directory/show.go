package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	internalErrors "github.com/gcbaptista/go-pro-directory/internal/errors"
	"github.com/gcbaptista/go-pro-directory/services"
)

var showStrict bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the name and bio of one professional",
	Long:  `Print the detail view of one professional. An unknown ID prints nothing unless --strict is set.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid professional ID %q: must be a positive integer", args[0])
		}

		a, err := loadApp(configPath)
		if err != nil {
			return err
		}
		return runShow(cmd.OutOrStdout(), a.directory, id, showStrict)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showStrict, "strict", false, "Fail when the ID is unknown")
	rootCmd.AddCommand(showCmd)
}

func runShow(w io.Writer, dir services.DetailReader, id int, strict bool) error {
	p, err := dir.Detail(id)
	if err != nil {
		if errors.Is(err, internalErrors.ErrProfessionalNotFound) && !strict {
			return nil
		}
		return err
	}
	return renderDetail(w, p)
}
