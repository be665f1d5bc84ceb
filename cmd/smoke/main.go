package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/humanbelnik/distancehug/internal/smoke"
)

func defaultBaseURL() string {
	if url := os.Getenv("SMOKE_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func main() {
	baseURL := flag.String("base-url", defaultBaseURL(), "server address without the /api prefix")
	flag.Parse()

	fmt.Println("Starting smoke tests for Distance Hug API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	runner := smoke.New(client, *baseURL, os.Stdout)

	ctx := context.Background()
	if !runner.WaitReady(ctx, 3, 2*time.Second) {
		os.Exit(1)
	}

	report := runner.Run(ctx)
	if !report.OK() {
		for _, f := range report.Failures {
			fmt.Println(" -", f)
		}
		os.Exit(1)
	}

	fmt.Println("\n All smoke tests passed!")
}
