package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"building-query/api"
	"building-query/config"
	"building-query/di"
	"building-query/models"
	"building-query/util"

	"github.com/spf13/cobra"
)

// globalOptions are shared by every command.
type globalOptions struct {
	endpoint   string
	timeout    time.Duration
	citiesFile string
	cacheRedis string
	cacheTTL   time.Duration
	debug      bool
}

func (g *globalOptions) containerOptions(logOutput io.Writer) di.Options {
	return di.Options{
		Endpoint:       g.endpoint,
		Timeout:        g.timeout,
		CacheRedisAddr: g.cacheRedis,
		CacheTTL:       g.cacheTTL,
		Debug:          g.debug,
		LogOutput:      logOutput,
	}
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return run(context.Background(), NewRootCmd(os.Stdout, os.Stderr), os.Stderr)
}

func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Remote failures were already reported with the full response body.
		if _, ok := api.AsRemoteRequestFailed(err); !ok {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. The root command downloads building
// footprints for one city.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		global globalOptions
		city   string
		output string
		plot   string
	)

	builtIn := models.DefaultCityCatalog().Names()

	cmd := &cobra.Command{
		Use:           "building-query",
		Short:         "Download OpenStreetMap building footprints for a city from the Overpass API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := di.LoadCityCatalog(global.citiesFile)
			if err != nil {
				return err
			}
			bbox, err := catalog.Lookup(city)
			if err != nil {
				return err
			}

			if plot != "" {
				if err := util.PlotBoundingBoxToFile(plot, city, bbox); err != nil {
					return err
				}
			}

			container, err := di.NewContainer(cmd.Context(), catalog, global.containerOptions(stderr))
			if err != nil {
				return err
			}
			defer container.Close()

			open := util.WriterOpener(stdout)
			if output != "" && output != "-" {
				open = util.FileOpener(output)
			}
			return container.BuildingQueryService.Run(cmd.Context(), city, open, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&city, "city", "", fmt.Sprintf("City name (one of: %s)", strings.Join(builtIn, ", ")))
	flags.StringVar(&output, "output", "", "Output file (default: stdout)")
	flags.StringVar(&plot, "plot", "", "Also write an HTML plot of the city's bounding box to this file")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.RegisterFlagCompletionFunc("city", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return builtIn, cobra.ShellCompDirectiveNoFileComp
	})

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&global.endpoint, "endpoint", "", fmt.Sprintf("Overpass interpreter URL (default: $%s or %s)", config.OVERPASS_ENDPOINT_ENV, config.OVERPASS_ENDPOINT))
	persistent.DurationVar(&global.timeout, "timeout", config.OverpassTimeout(), "HTTP client timeout, 0 for none")
	persistent.StringVar(&global.citiesFile, "cities-file", "", "YAML file with extra cities")
	persistent.StringVar(&global.cacheRedis, "cache-redis", "", "Redis address used to cache successful responses (disabled when empty)")
	persistent.DurationVar(&global.cacheTTL, "cache-ttl", config.RESPONSE_CACHE_DEFAULT_TTL, "How long cached responses stay valid")
	persistent.BoolVar(&global.debug, "debug", false, "Enable verbose logging to stderr")

	cmd.AddCommand(newCitiesCmd(&global, stdout))
	cmd.AddCommand(newServeCmd(&global, stderr))
	return cmd
}
