package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"vo-server/api"
	"vo-server/api/distance"
	"vo-server/api/places"
	"vo-server/config"
	"vo-server/dao/redis"
	"vo-server/db"
	"vo-server/server"
	"vo-server/server/handlers"
	services "vo-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                db.RedisClient
	RedisVenueDao              *redis.RedisVenueDAO
	PlacesAPI                  places.PlacesAPI
	DistanceMatrixAPI          distance.DistanceMatrixAPI
	VenueOptimizerService      *services.VenueOptimizerService
	VenueCacheRefresherService *services.VenueCacheRefresherService
	VenueHandler               *handlers.VenueHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	VenueOptimizerHttpServer   *server.VenueOptimizerHttpServer
}

// NewContainer initializes and wires up all dependencies. Anything other
// than env == "prod" gets the fixture-backed provider mocks, so the whole
// pipeline runs without provider credentials.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client internals
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis mock")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
	}

	// Initialize Redis Venue DAO
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	// Initialize provider clients - mocks outside prod
	var placesAPI places.PlacesAPI
	var distanceMatrixAPI distance.DistanceMatrixAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		distanceMatrixAPI = distance.NewDistanceMatrixApiClientMock()
		log.Printf("Using mock mapping providers")
	} else {
		log.Printf("Using prod mapping providers")
		placesAPI = places.NewPlacesApiClient(api.NewHTTPClient(config.PLACES_ENDPOINT_BASE))
		placesAPI.SetCredentials(config.MapsAPIKey())

		distanceMatrixAPI = distance.NewDistanceMatrixApiClient(api.NewHTTPClient(config.DISTANCE_MATRIX_ENDPOINT_BASE))
		distanceMatrixAPI.SetCredentials(config.MapsAPIKey())
	}

	// Initialize service layer
	venueOptimizerService := services.NewVenueOptimizerService(placesAPI, distanceMatrixAPI, redisVenueDao)
	venueCacheRefresherService := services.NewVenueCacheRefresherService(redisVenueDao, placesAPI)

	// Initialize venue handler
	venueHandler := handlers.NewVenueHandler(venueOptimizerService, redisVenueDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, muxRouter)

	// Initialize venue optimizer server
	venueOptimizerHttpServer := server.NewVenueOptimizerHttpServer(router, muxRouter)

	return &Container{
		RedisClient:                redisClient,
		RedisVenueDao:              redisVenueDao,
		PlacesAPI:                  placesAPI,
		DistanceMatrixAPI:          distanceMatrixAPI,
		VenueOptimizerService:      venueOptimizerService,
		VenueCacheRefresherService: venueCacheRefresherService,
		VenueHandler:               venueHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		VenueOptimizerHttpServer:   venueOptimizerHttpServer,
	}
}
