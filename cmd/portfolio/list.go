package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/types"
	"github.com/spf13/cobra"
)

var (
	listCategory  string
	listTimeframe string
	listQuery     string
	listKeyOnly   bool
	listTrending  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List metrics with formatted values",
	Long:  "Lists metrics matching every given filter, one per line with icon, formatted value, name and timeframe.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only metrics in this category")
	listCmd.Flags().StringVarP(&listTimeframe, "timeframe", "t", "", "Only metrics whose timeframe contains this text")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive search over name and description")
	listCmd.Flags().BoolVar(&listKeyOnly, "key", false, "Only the headline key metrics")
	listCmd.Flags().BoolVar(&listTrending, "trending", false, "Only metrics trending up")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	query := metrics.Query{
		Timeframe: listTimeframe,
		Search:    listQuery,
		KeyOnly:   listKeyOnly,
		Trending:  listTrending,
	}
	if listCategory != "" {
		c := types.Category(strings.ToLower(listCategory))
		if !c.Valid() {
			return fmt.Errorf("unknown category %q (valid: %s)", listCategory, categoryNames())
		}
		query.Category = c
	}

	_, store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	matches := store.Filter(query)
	if len(matches) == 0 {
		_, err := fmt.Fprintln(out, "no matching metrics")
		return err
	}

	for _, view := range metrics.NewViews(matches) {
		if _, err := fmt.Fprintf(out, "%s %-14s %-32s %s\n", view.Glyph, view.Display, view.Name, view.Timeframe); err != nil {
			return err
		}
	}
	return nil
}

func categoryNames() string {
	names := make([]string, 0, len(types.AllCategories()))
	for _, c := range types.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
