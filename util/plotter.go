package util

import (
	"fmt"
	"io"
	"os"

	"building-query/config"
	"building-query/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// BoundingBoxCorners returns the box outline as geo points, closed back on SW.
func BoundingBoxCorners(bbox models.BoundingBox) []opts.GeoData {
	return []opts.GeoData{
		{Name: "SW", Value: []float64{bbox.West, bbox.South}},
		{Name: "NW", Value: []float64{bbox.West, bbox.North}},
		{Name: "NE", Value: []float64{bbox.East, bbox.North}},
		{Name: "SE", Value: []float64{bbox.East, bbox.South}},
		{Name: "SW", Value: []float64{bbox.West, bbox.South}}, // Close the polygon.
	}
}

// PlotBoundingBox renders an HTML page showing the city's bounding box.
func PlotBoundingBox(city string, bbox models.BoundingBox, w io.Writer) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bounding Box Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    city,
			Subtitle: bbox.String(),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries(city, types.ChartScatter, BoundingBoxCorners(bbox),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// PlotBoundingBoxToFile writes the PlotBoundingBox page to path.
func PlotBoundingBoxToFile(path, city string, bbox models.BoundingBox) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.OUTPUT_FILE_MODE)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := PlotBoundingBox(city, bbox, f); err != nil {
		return err
	}
	return f.Close()
}
