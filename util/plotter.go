package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"vo-server/models"
)

// PlotOptimization generates an HTML file rendering the participants, the
// centroid and the ranked venues of one optimization run.
func PlotOptimization(participants []models.Participant, result *models.OptimizationResult, outputPath string) {
	participantPoints := []opts.GeoData{}
	for _, p := range participants {
		if !p.HasLocation() {
			continue
		}
		participantPoints = append(participantPoints, opts.GeoData{
			Name:  p.Name,
			Value: []float64{p.StartLocation.Longitude, p.StartLocation.Latitude},
		})
	}

	centroidPoints := []opts.GeoData{
		{Name: "Centroid", Value: []float64{result.Centroid.Lng, result.Centroid.Lat}},
	}

	venuePoints := []opts.GeoData{}
	for i, v := range result.Venues {
		venuePoints = append(venuePoints, opts.GeoData{
			Name:  fmt.Sprintf("#%d %s", i+1, v.Name),
			Value: []float64{v.Location.Lng, v.Location.Lat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Optimization Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Participants", types.ChartScatter, participantPoints,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Centroid", types.ChartScatter, centroidPoints,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("RankedVenues", types.ChartScatter, venuePoints,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Optimization map generated:", outputPath)
}
