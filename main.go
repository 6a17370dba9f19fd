package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"blogbot/api"
	"blogbot/common"
	"blogbot/config"
	"blogbot/kafka"
	"blogbot/scrape"
	"blogbot/search"
	"blogbot/store"
	"blogbot/workflow"
	"blogbot/writer"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.FromEnv()

	if cfg.CohereAPIKey == "" {
		log.Fatal("COHERE_API_KEY is required")
	}

	stageStore := initializeStore(cfg)

	searchStage := search.NewStage(stageStore, search.NewGoogleNewsSearcher(cfg.SearchMaxResults), search.DefaultAttempts)
	scrapeStage := scrape.NewStage(stageStore, scrape.NewReadabilityScraper())
	writeStage := writer.NewStage(writer.NewCohereWriter(cfg.CohereAPIKey, cfg.CohereModel))

	gen := workflow.NewGenerator(stageStore, searchStage, scrapeStage, writeStage)

	if archiver := initializeArchiver(cfg); archiver != nil {
		gen.WithArchiver(archiver)
	}

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewRequestConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, gen)
		if err != nil {
			log.Fatalf("Failed to create Kafka consumer: %v", err)
		}
		if err := consumer.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start Kafka consumer: %v", err)
		}
		defer consumer.Close()
	} else {
		log.Println("Kafka not configured; queued request intake disabled")
	}

	addr := ":" + cfg.Port
	r := api.NewRouter(gen)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/blog/generate")
	log.Println("  GET  /api/blog/post")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeStore connects to Redis when REDIS_ADDR is set; otherwise falls
// back to the process-local store (cache entries do not survive restarts).
func initializeStore(cfg config.Config) store.Store {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set; using in-memory stage store")
		return store.NewMemoryStore()
	}

	s, err := store.NewRedisStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Printf("Using Redis stage store at %s", cfg.RedisAddr)
	return s
}

// initializeArchiver returns an S3 post archiver if configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true
func initializeArchiver(cfg config.Config) *common.PostArchiver {
	if cfg.S3Bucket == "" {
		log.Println("S3 not configured; post archiving disabled")
		return nil
	}

	s3c, err := common.NewS3(context.Background(), common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}

	return common.NewPostArchiver(s3c, cfg.S3Bucket, cfg.S3Prefix)
}
