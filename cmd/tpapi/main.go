/*
 * Copyright 2026 the tp-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/AlexVV13/tp-api-sub000/pkg/config"
	"github.com/AlexVV13/tp-api-sub000/pkg/europapark"
	"github.com/AlexVV13/tp-api-sub000/pkg/logger"
	"github.com/AlexVV13/tp-api-sub000/pkg/models"
)

func main() {
	configPath := flag.String("config", "tpapi.json", "Path to config file")
	park := flag.String("park", europapark.ScopeEuropaPark, "Park scope (europapark|rulantica)")
	locale := flag.String("locale", "en", "Locale for POI names and descriptions")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	var cfg europapark.Config

	if err := config.Load(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Secrets may arrive via the environment; europapark.New validates
	// the merged result.
	overlayEnv(&cfg)

	lg, err := logger.NewLogger(logger.Config{Debug: *debug, Output: "stderr"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	opts := []europapark.Option{europapark.WithLogger(lg)}
	if *park == europapark.ScopeRulantica {
		opts = append(opts, europapark.WithParkScope("Rulantica", europapark.ScopeRulantica))
	}

	adapter, err := europapark.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create adapter: %v", err)
	}

	ctx := context.Background()

	var (
		queues    []models.QueueRecord
		schedules []models.ScheduleRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		queues, err = adapter.GetQueues(gctx, *locale)
		return err
	})

	g.Go(func() error {
		var err error
		schedules, err = adapter.GetSchedules(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(map[string]any{
		"queues":    queues,
		"schedules": schedules,
	}); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}

// overlayEnv lets secrets come from the environment instead of the
// config file, which keeps key material out of checked-in configs.
func overlayEnv(cfg *europapark.Config) {
	overlay := map[string]*string{
		"TPAPI_API_KEY":        &cfg.APIKey,
		"TPAPI_ENCRYPTION_KEY": &cfg.EncryptionKey,
		"TPAPI_ENCRYPTION_IV":  &cfg.EncryptionIV,
	}

	for name, field := range overlay {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}
