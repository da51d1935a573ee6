package main

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	"github.com/KirkDiggler/wilran/internal/catalog"
	"github.com/KirkDiggler/wilran/internal/config"
	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/repositories/roster"
	"github.com/KirkDiggler/wilran/internal/services"
)

// app is everything a command needs, built once before it runs
type app struct {
	in       io.Reader
	out      io.Writer
	cfg      *config.Config
	provider *services.Provider

	// persistent means the roster outlives the process
	persistent bool
	closers    []func() error
}

type overrides struct {
	dataDir string
	seed    uint64
	seedSet bool
}

func (a *app) bootstrap(ctx context.Context, o overrides) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.seedSet {
		cfg.Seed = o.seed
	}
	a.cfg = cfg

	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	roller := dice.NewRandomRoller()
	if cfg.Seed != 0 {
		log.Printf("Using seeded roller (seed %d)", cfg.Seed)
		roller = dice.NewSeededRoller(cfg.Seed)
	}

	providerConfig := &services.ProviderConfig{
		Catalog: cat,
		Roller:  roller,
	}

	if client := a.connectRedis(ctx, cfg.Redis.URL); client != nil {
		providerConfig.RosterRepository = roster.NewRedis(client)
		a.persistent = true
		a.closers = append(a.closers, client.Close)
		log.Println("Using Redis for the roster")
	}

	a.provider = services.NewProvider(providerConfig)

	sinks := []battlelog.Sink{battlelog.NewWriterSink(a.out)}
	if sink := a.discordSink(cfg.Discord); sink != nil {
		sinks = append(sinks, sink)
	}
	battlelog.NewListener("battle-log", sinks...).Subscribe(a.provider.EventBus)

	return nil
}

// connectRedis returns nil, falling back to the in-memory roster, when no
// URL is set or the server cannot be reached
func (a *app) connectRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		log.Println("No REDIS_URL found, using in-memory roster")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", url)
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory roster")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory roster")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

// discordSink only needs the REST API, so the gateway is never opened
func (a *app) discordSink(cfg config.DiscordConfig) battlelog.Sink {
	if !cfg.Enabled() {
		return nil
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Printf("Failed to create Discord session, battle log stays local: %v", err)
		return nil
	}

	log.Printf("Posting battle log to Discord channel %s", cfg.LogChannelID)
	return battlelog.NewDiscordSink(&battlelog.DiscordSinkConfig{
		Session:   dg,
		ChannelID: cfg.LogChannelID,
	})
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
