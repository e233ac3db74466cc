package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"building-query/config"
	"building-query/di"

	"github.com/spf13/cobra"
)

func newServeCmd(global *globalOptions, stderr io.Writer) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve building footprints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := di.LoadCityCatalog(global.citiesFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			container, err := di.NewContainer(ctx, catalog, global.containerOptions(stderr))
			if err != nil {
				return err
			}
			defer container.Close()

			return container.BuildingQueryHttpServer.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.SERVER_ADDRESS, "Listen address")
	return cmd
}
