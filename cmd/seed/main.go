package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	intconfig "luggagebill/internal/config"
	"luggagebill/internal/db"
	"luggagebill/internal/seed"
	"luggagebill/internal/utils"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Customers, "customers", opts.Customers, "customers to create")
	flag.IntVar(&opts.Buses, "buses", opts.Buses, "buses to create")
	flag.IntVar(&opts.ParkLocations, "park-locations", opts.ParkLocations, "park locations to create")
	flag.IntVar(&opts.Trips, "trips", opts.Trips, "trips to create")
	flag.IntVar(&opts.Bills, "bills", opts.Bills, "luggage bills to create")
	randSeed := flag.Uint64("seed", 0, "faker seed (0 picks a random one)")
	flag.Parse()

	env, envErr := intconfig.LoadEnv()
	logger, err := utils.InitLogger(env.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Warn("using process environment only", zap.Error(envErr))
	}

	conn, err := intconfig.ConnectDB(env)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := db.EnsureSchema(ctx, conn); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}

	start := time.Now()
	seeder := seed.New("seed", gofakeit.New(*randSeed), logger)
	sum, err := seeder.Run(ctx, opts)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err), zap.Any("created", sum))
	}
	logger.Info("initial data population complete",
		zap.Any("created", sum),
		zap.String("took", time.Since(start).Round(10*time.Millisecond).String()),
	)
}
