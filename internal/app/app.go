package app

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/humanbelnik/distancehug/internal/config"
	http_content "github.com/humanbelnik/distancehug/internal/delivery/http/content"
	http_init "github.com/humanbelnik/distancehug/internal/delivery/http/init"
	http_root "github.com/humanbelnik/distancehug/internal/delivery/http/root"
	http_room "github.com/humanbelnik/distancehug/internal/delivery/http/room"
	http_swagger "github.com/humanbelnik/distancehug/internal/delivery/http/swagger"
	infra_storage "github.com/humanbelnik/distancehug/internal/infra/storage"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
)

const (
	flowersLogSize        = 100
	messagesLogSize       = 100
	hugsLogSize           = 50
	valentineCardsLogSize = 50
)

const closeTimeout = 5 * time.Second

func Go(cfg *config.Config) {
	logger := NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := infra_storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open storage",
			slog.String("driver", cfg.Storage.Driver),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("storage ready", slog.String("driver", store.Driver))

	controllerPool := NewControllerPool(cfg, store, logger)

	addr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
	if err := controllerPool.Run(ctx, addr); err != nil {
		logger.Error("http server failed", slog.String("error", err.Error()))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		logger.Error("failed to close storage", slog.String("error", err.Error()))
	}
}

// NewControllerPool wires usecases over store and registers every controller.
func NewControllerPool(cfg *config.Config, store *infra_storage.Store, logger *slog.Logger) *http_init.ControllerPool {
	roomUC := usecase_room.New(store.Rooms, cfg.Rooms.CodeAttempts)

	flowersUC := usecase_content.NewLog[model.Flower](store.Flowers, flowersLogSize)
	messagesUC := usecase_content.NewLog[model.Note](store.Notes, messagesLogSize)
	hugsUC := usecase_content.NewLog[model.Hug](store.Hugs, hugsLogSize)
	cardsUC := usecase_content.NewLog[model.ValentineCard](store.Cards, valentineCardsLogSize)
	countdownUC := usecase_content.NewSingleton[model.Countdown](store.Countdowns)
	bucketListUC := usecase_content.NewSingleton[model.BucketList](store.BucketLists)

	controllerPool := http_init.NewControllerPool(
		http_init.WithLogger(logger),
		http_init.WithMode(cfg.HTTP.Mode),
		http_init.WithCORSOrigins(cfg.HTTP.CORSOrigins),
	)
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_root.New())
	controllerPool.Add(http_room.New(roomUC, http_room.WithLogger(logger)))
	controllerPool.Add(http_content.NewFlowers(flowersUC, http_content.WithLogger(logger)))
	controllerPool.Add(http_content.NewMessages(messagesUC, http_content.WithLogger(logger)))
	controllerPool.Add(http_content.NewHugs(hugsUC, http_content.WithLogger(logger)))
	controllerPool.Add(http_content.NewValentineCards(cardsUC, http_content.WithLogger(logger)))
	controllerPool.Add(http_content.NewCountdown(countdownUC, http_content.WithLogger(logger)))
	controllerPool.Add(http_content.NewBucketList(bucketListUC, http_content.WithLogger(logger)))

	controllerPool.Register()
	return controllerPool
}

func NewLogger(cfg config.Logging) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
