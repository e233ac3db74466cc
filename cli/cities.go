package cli

import (
	"fmt"
	"io"

	"building-query/di"

	"github.com/spf13/cobra"
)

func newCitiesCmd(global *globalOptions, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities and their bounding boxes (south, west, north, east)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog, err := di.LoadCityCatalog(global.citiesFile)
			if err != nil {
				return err
			}
			for _, name := range catalog.Names() {
				fmt.Fprintf(stdout, "%s: %s\n", name, catalog[name])
			}
			return nil
		},
	}
}
