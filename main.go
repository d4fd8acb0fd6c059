// backend/main.go
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/astrorient/skywatch/backend/config"
	"github.com/astrorient/skywatch/backend/database"
	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/astrorient/skywatch/backend/handlers"
	"github.com/astrorient/skywatch/backend/services"
)

func main() {
	log.Println("Starting Skywatch ingestion backend...")

	cfg := config.Load()
	log.Printf("Configuration loaded. Server port: %s, DB name: %s",
		cfg.Server.Port, cfg.Database.DBName)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Error initializing database schema: %v", err)
	}

	cacheStore := database.NewCacheStore(db)
	catalogStore := database.NewCatalogStore(db)

	client := fetcher.NewClient(30 * time.Second)
	nasa := fetcher.NewNasaClient(client, cfg.Sources.NasaAPIKey)

	tracking := services.NewTrackingService(cacheStore,
		fetcher.NewPositionSource(client, cfg.Sources.PositionURL))
	catalog := services.NewCatalogService(catalogStore,
		fetcher.NewCatalogSource(client, cfg.Sources.CatalogURL), cfg.Extraction)

	feed := services.NewFeedService(cacheStore, catalogStore)
	feed.RegisterSource("apod", fetcher.NewApodSource(nasa))
	feed.RegisterSource("neo", fetcher.NewNeoSource(nasa))
	feed.RegisterSource("flr", fetcher.NewFlrSource(nasa))
	feed.RegisterSource("cme", fetcher.NewCmeSource(nasa))
	feed.RegisterSource("launch", fetcher.NewLaunchSource(client, cfg.Sources.LaunchURL))
	if cfg.Sources.SunspotsURL != "" {
		feed.RegisterSource("sunspots", fetcher.NewSunspotSource(client, cfg.Sources.SunspotsURL))
	}
	if cfg.Sources.NewsURL != "" {
		feed.RegisterSource("news", fetcher.NewNewsSource(client, cfg.Sources.NewsURL))
	}

	scheduler := services.NewScheduler()
	scheduler.Register("position", seconds(cfg.Intervals.PositionSeconds), tracking.FetchAndStore)
	scheduler.Register("catalog", seconds(cfg.Intervals.CatalogSeconds), func() error {
		_, err := catalog.Sync()
		return err
	})
	feedIntervals := map[string]int{
		"apod":     cfg.Intervals.ApodSeconds,
		"neo":      cfg.Intervals.NeoSeconds,
		"flr":      cfg.Intervals.DonkiSeconds,
		"cme":      cfg.Intervals.DonkiSeconds,
		"launch":   cfg.Intervals.LaunchSeconds,
		"sunspots": cfg.Intervals.SunspotsSeconds,
		"news":     cfg.Intervals.NewsSeconds,
	}
	for _, tag := range feed.Tags() {
		tag := tag
		scheduler.Register(tag, seconds(feedIntervals[tag]), func() error {
			return feed.FetchSource(tag)
		})
	}
	scheduler.Start()

	handler := handlers.New(db, tracking, catalog, feed, cfg.ListLimit)
	mux := http.NewServeMux()
	handler.Routes(mux)

	serverAddr := ":" + cfg.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
