package main

import (
	"context"
	"log"
	"os"
	"time"

	"vo-server/config"
	"vo-server/di"
	"vo-server/models"
	"vo-server/util"
)

// demoParticipants is a small poll used to smoke-test the pipeline against
// the mock providers when running outside prod.
func demoParticipants() []models.Participant {
	return []models.Participant{
		{
			ID:   "p1",
			Name: "Alice",
			StartLocation: &models.ParticipantLocation{
				Latitude: -8.059297, Longitude: -34.880373, Address: "Centro",
			},
			TransportMode: models.TransportDriving,
			Votes:         []models.Vote{{OptionID: "date-1", Type: models.VoteYes}},
		},
		{
			ID:   "p2",
			Name: "Bruno",
			StartLocation: &models.ParticipantLocation{
				Latitude: -8.047251, Longitude: -34.939524, Address: "Varzea",
			},
			TransportMode: models.TransportTransit,
			Votes:         []models.Vote{{OptionID: "date-1", Type: models.VoteIfNeedBe}},
		},
		{
			ID:   "p3",
			Name: "Carla",
			StartLocation: &models.ParticipantLocation{
				Latitude: -8.029736, Longitude: -34.870261, Address: "Olinda",
			},
			TransportMode: models.TransportDriving,
			Votes:         []models.Vote{{OptionID: "date-1", Type: models.VoteNo}},
		},
	}
}

func runDemoOptimization(container *di.Container) {
	log.Println("Running: runDemoOptimization")
	participants := demoParticipants()

	result, err := container.VenueOptimizerService.FindOptimalVenues(
		context.Background(),
		participants,
		"date-1",
		models.VenuePreferences{VenueType: "cafe"},
		models.OptimizeETA,
	)
	if err != nil {
		log.Println("Error while running runDemoOptimization: ", err)
		return
	}

	util.PrintOptimizationResultPartially(result)
	util.PlotOptimization(participants, result, "optimization_map.html")
}

func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	if env != "prod" {
		runDemoOptimization(container)
	}

	log.Println("starting cache refresher job!")
	container.VenueCacheRefresherService.StartPeriodicJob(
		config.CACHE_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("starting server!")
	container.VenueOptimizerHttpServer.Start()
}
