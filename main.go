package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/config"
	"coc_clan_stats/internal/domain/member"
	"coc_clan_stats/internal/processing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Parse command line flags; environment values are the defaults
	membersFile := flag.String("members", cfg.MembersFile, "Path to a clan member list JSON snapshot")
	warFile := flag.String("war", cfg.WarFile, "Path to a current war JSON snapshot")
	search := flag.String("search", "", "Case-insensitive name filter")
	role := flag.String("role", member.FilterAll, "Role filter (leader, coLeader, elder, member or all)")
	townHall := flag.String("th", member.FilterAll, "Town hall level filter or all")
	league := flag.String("league", member.FilterAll, "League name filter or all")
	sortKey := flag.String("sort", string(member.SortByTrophies), "Sort key: trophies, donations or name")
	page := flag.Int("page", 1, "Page number, starting at 1")
	pageSize := flag.Int("page-size", cfg.PageSize, "Members per page")
	topN := flag.Int("top", cfg.TopN, "Number of top attackers and defenders to list")
	noCache := flag.Bool("no-cache", !cfg.CacheEnabled, "Disable dashboard memoization")
	syntheticHistory := flag.Bool("synthetic-history", false, "Generate placeholder trophy history for members without any")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for synthetic history")
	interval := flag.Duration("interval", cfg.Interval, "Interval between snapshot reloads (e.g., 1m, 5m)")
	runOnce := flag.Bool("once", false, "Run once and exit (don't start the reload loop)")
	flag.Parse()

	if *membersFile == "" && *warFile == "" {
		log.Fatal().Msg("Nothing to do: provide -members and/or -war (or MEMBERS_FILE / WAR_FILE)")
	}
	if !*runOnce && *interval <= 0 {
		log.Fatal().Dur("interval", *interval).Msg("Interval must be positive")
	}

	log.Info().
		Str("members_file", *membersFile).
		Str("war_file", *warFile).
		Bool("cache", !*noCache).
		Dur("interval", *interval).
		Bool("run_once", *runOnce).
		Msg("Starting clan stats")

	tracker := processing.NewCacheTracker()
	service := processing.NewDashboardService()
	var cache *processing.CachedDashboardService
	if !*noCache {
		cache = processing.NewCachedDashboardService(service, tracker, processing.ViewCacheConfig{TTL: cfg.CacheTTL})
	}

	runner := processing.NewDashboardRunner(service, cache, processing.RunnerOptions{
		MembersFile: *membersFile,
		WarFile:     *warFile,
		Query: member.Query{
			SearchText:     *search,
			RoleFilter:     *role,
			TownHallFilter: *townHall,
			LeagueFilter:   *league,
			SortKey:        member.SortKey(*sortKey),
			Page:           *page,
			PageSize:       config.ClampPageSize(*pageSize),
		},
		TopN:             *topN,
		SyntheticHistory: *syntheticHistory,
		HistoryDays:      cfg.HistoryDays,
		Seed:             *seed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	// Define the main processing function
	processSnapshots := func() error {
		log.Debug().Msg("Starting dashboard cycle")

		// Reset cache counters at the start of each cycle
		tracker.ResetSession()

		result, err := runner.RunCycle(ctx)
		if err != nil {
			return err
		}

		if err := encoder.Encode(result); err != nil {
			return err
		}

		if !*noCache {
			tracker.LogSessionSummary()
		}
		return nil
	}

	// Run initial processing
	if err := processSnapshots(); err != nil {
		if *runOnce {
			log.Fatal().Err(err).Msg("Failed to build dashboards")
		}
		log.Error().Err(err).Msg("Failed to build dashboards")
	}

	// Exit if run-once flag is set
	if *runOnce {
		return
	}

	// SIGHUP drops memoized dashboards without restarting
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	defer signal.Stop(reload)

	log.Info().
		Dur("interval", *interval).
		Msg("Starting scheduled snapshot reloads")

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			return
		case <-reload:
			runner.ClearCache()
		case <-ticker.C:
			if err := processSnapshots(); err != nil {
				log.Error().Err(err).Msg("Failed to build dashboards")
			}
		}
	}
}
