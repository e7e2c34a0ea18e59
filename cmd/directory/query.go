package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-pro-directory/internal/locale"
	"github.com/gcbaptista/go-pro-directory/model"
	"github.com/gcbaptista/go-pro-directory/services"
)

type queryOptions struct {
	search    string
	refine    string
	role      string
	order     string
	favorites bool
	asJSON    bool
}

var queryOpts queryOptions

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a directory query and print the matching professionals",
	Example: `  directory query --search "são paulo"
  directory query --role DevOps --order rating
  directory query --favorites --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(configPath)
		if err != nil {
			return err
		}
		return runQuery(cmd.OutOrStdout(), a.directory, a.formatter, queryOpts, a.settings.DefaultSortOrder())
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryOpts.search, "search", "s", "", "Search term matched against name, role and city")
	queryCmd.Flags().StringVar(&queryOpts.refine, "refine", "", "Second term applied after the favorites filter")
	queryCmd.Flags().StringVar(&queryOpts.role, "role", "", "Exact role to keep")
	queryCmd.Flags().StringVar(&queryOpts.order, "order", "", "Sort order: relevance, rating or reviews")
	queryCmd.Flags().BoolVar(&queryOpts.favorites, "favorites", false, "Only favorite professionals")
	queryCmd.Flags().BoolVar(&queryOpts.asJSON, "json", false, "Print JSON instead of cards")
	rootCmd.AddCommand(queryCmd)
}

type queryOutput struct {
	Professionals []model.Professional `json:"professionals"`
	Total         int                  `json:"total"`
	Label         string               `json:"label"`
}

func runQuery(w io.Writer, dir services.Searcher, f *locale.Formatter, opts queryOptions, defaultOrder model.SortOrder) error {
	order := defaultOrder
	if opts.order != "" {
		parsed, ok := model.ParseSortOrder(opts.order)
		if !ok {
			return fmt.Errorf("invalid --order %q: must be one of relevance, rating, reviews", opts.order)
		}
		order = parsed
	}

	result := dir.Search(model.Query{
		SearchTerm:    opts.search,
		RefineTerm:    opts.refine,
		RoleFilter:    opts.role,
		FavoritesOnly: opts.favorites,
		SortOrder:     order,
	})

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(queryOutput{
			Professionals: result.Professionals,
			Total:         result.Total,
			Label:         f.CountLabel(result.Total),
		})
	}
	return renderResult(w, f, result)
}
