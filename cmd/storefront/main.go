package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yqlstore/storefront/internal/cart"
	"github.com/yqlstore/storefront/internal/catalog"
	"github.com/yqlstore/storefront/internal/comments"
	"github.com/yqlstore/storefront/internal/notifications"
	"github.com/yqlstore/storefront/pkg/auth"
	"github.com/yqlstore/storefront/pkg/config"
	"github.com/yqlstore/storefront/pkg/db"
	"github.com/yqlstore/storefront/pkg/enums"
	"github.com/yqlstore/storefront/pkg/logger"
	"github.com/yqlstore/storefront/pkg/metrics"
	"github.com/yqlstore/storefront/pkg/storeapi"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	requestMetrics := metrics.NewRequestMetrics(prometheus.DefaultRegisterer)
	apiClient := storeapi.NewClient(cfg.API, storeapi.WithMetrics(requestMetrics))

	catalogService, err := catalog.NewService(apiClient)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	commentService, err := comments.NewService(apiClient, cfg.Admin.DisplayName)
	if err != nil {
		logg.Error(ctx, "failed to create comment service", err)
		os.Exit(1)
	}

	cartOpts := []cart.Option{cart.WithLogger(logg)}
	if cfg.Cart.PersistSnapshots {
		dbClient, err := db.New(ctx, cfg.Cart, logg)
		if err != nil {
			logg.Error(ctx, "failed to open cart snapshot database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(ctx, "error closing cart snapshot database", err)
			}
		}()

		if err := cart.Migrate(dbClient.DB()); err != nil {
			logg.Error(ctx, "failed to migrate cart snapshot schema", err)
			os.Exit(1)
		}
		cartOpts = append(cartOpts, cart.WithSnapshotRepository(cart.NewRepository(dbClient.DB())))
	}

	cartStore := cart.NewStore(cartOpts...)
	if err := cartStore.Restore(ctx); err != nil {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "cart snapshot restore failed, starting empty")
	}
	cartStore.Subscribe(func(snap cart.Snapshot) {
		fields := logg.WithFields(ctx, map[string]any{
			"lines":             len(snap.Lines),
			"total_quantity":    snap.TotalQuantity,
			"total_price_cents": snap.TotalPriceCents,
		})
		logg.Info(fields, "cart updated")
	})

	visitor := auth.AnonymousAuthority()
	logg.Info(logg.WithActorID(ctx, visitor.ActorID), "visitor session started")

	products, err := catalogService.List(ctx)
	if err != nil {
		logg.Error(ctx, "failed to fetch catalog", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "count", len(products)), "catalog fetched")

	for _, product := range products {
		fmt.Printf("%s  %s  $%.2f (%s)\n", product.ID, product.ModelName, product.Price, product.Condition)

		threads, err := commentService.ListForProduct(logg.WithProductID(ctx, product.ID), product.ID)
		if err != nil {
			logg.Error(logg.WithProductID(ctx, product.ID), "failed to fetch comments", err)
			continue
		}
		for _, thread := range threads {
			fmt.Printf("  %s: %s\n", thread.TopLevel.AuthorName, thread.TopLevel.Body)
			for _, reply := range thread.Replies {
				fmt.Printf("    > %s: %s\n", reply.AuthorName, reply.Body)
			}
		}
	}

	if len(products) > 0 {
		cartStore.AddItem(ctx, products[0])
		cartStore.AddItem(ctx, products[0])
	}

	feed, err := notifications.Build(ctx, apiClient)
	if err != nil {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "notification feed built partially")
	}
	if feed != nil {
		for _, entry := range feed.List(enums.NotificationReadFilterUnread) {
			fmt.Printf("[%s/%s] %s: %s\n", entry.Type, entry.Priority, entry.Title, entry.Message)
		}
	}
}
