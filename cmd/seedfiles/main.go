package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"brainscript/config"
	"brainscript/db"
	"brainscript/internal/logger"
	"brainscript/models"
	"brainscript/services"

	"github.com/joho/godotenv"
)

// seed data shown on an empty "Saved files" page
var (
	demoTranscripts = []services.TranscriptInput{
		{
			VideoID:    "dQw4w9WgXcQ",
			VideoTitle: "Learn JavaScript Basics",
			Transcript: "Welcome to this JavaScript fundamentals course. Today we cover variables, data types, functions, control flow, objects and arrays.",
		},
		{
			VideoID:    "jNQXAC9IVRw",
			VideoTitle: "React Hooks Explained",
			Transcript: "React Hooks let you hook into React features from function components: useState, useEffect, useContext, useReducer, useCallback and useMemo.",
		},
	}
	demoSummaries = []services.SummaryInput{
		{
			VideoID:    "dQw4w9WgXcQ",
			VideoTitle: "Learn JavaScript Basics",
			Summary:    "Covers var/let/const scoping, primitive and complex types, functions and arrow functions, branching and loops.",
		},
	}
	demoDownloads = []services.DownloadInput{
		{
			VideoID:    "jNQXAC9IVRw",
			VideoTitle: "React Hooks Explained",
			FileType:   string(models.DownloadSummary),
			FileName:   "react-hooks-summary.txt",
			Content:    "useState adds state, useEffect runs side effects, custom hooks share logic.",
		},
	}
)

func main() {
	email := flag.String("email", "", "Email of the user to seed (required)")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *email == "" {
		fmt.Println("Error: email is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.ConnectMongoDB(ctx, cfg.Database.URI); err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer db.DisconnectMongoDB(context.Background())

	store := db.NewMongoUserStore(db.MongoDatabase)
	user, err := store.FindByEmail(ctx, strings.ToLower(*email))
	if errors.Is(err, db.ErrUserNotFound) {
		log.Fatal("no user with that email, sign in once first")
	}
	if err != nil {
		log.Fatal("database error", "error", err)
	}

	now := time.Now()
	for i, in := range demoTranscripts {
		if _, err := services.UpsertTranscript(user, in, now.Add(-time.Duration(7-2*i)*24*time.Hour)); err != nil {
			log.Fatal("invalid demo transcript", "error", err)
		}
	}
	for _, in := range demoSummaries {
		if _, err := services.UpsertSummary(user, in, now); err != nil {
			log.Fatal("invalid demo summary", "error", err)
		}
	}
	for _, in := range demoDownloads {
		in.FileSize = int64(len(in.Content))
		if _, err := services.AppendDownload(user, in, now); err != nil {
			log.Fatal("invalid demo download", "error", err)
		}
	}

	user.UpdatedAt = now
	if err := store.Save(ctx, user); err != nil {
		log.Fatal("failed to save user", "error", err)
	}

	fmt.Printf("Seeded files for %s\n", user.Name)
	fmt.Printf("   Transcripts: %d\n", len(user.Transcripts))
	fmt.Printf("   Summaries:   %d\n", len(user.Summaries))
	fmt.Printf("   Downloads:   %d\n", len(user.Downloads))
}
