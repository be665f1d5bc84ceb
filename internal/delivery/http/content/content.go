package http_content

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type base struct {
	logger *slog.Logger
}

type ControllerOption func(*base)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(b *base) {
		b.logger = logger
	}
}

func newBase(opts []ControllerOption) base {
	b := base{logger: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func appendEntry[P any](ctx *gin.Context, b base, uc *usecase_content.Log[P], kind, roomCode string, payload P) {
	if _, err := uc.Append(ctx, roomCode, payload); err != nil {
		b.logger.Error("failed to store "+kind,
			slog.String("room_code", roomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}
	http_common.Success(ctx)
}

// listRecent answers with the room's newest entries, up to the log size.
func listRecent[P, D any](ctx *gin.Context, b base, uc *usecase_content.Log[P], kind string, toDTO func(model.Entry[P]) D) {
	roomCode := ctx.Param("room_code")

	entries, err := uc.Recent(ctx, roomCode, uc.Size())
	if err != nil {
		b.logger.Error("failed to list "+kind,
			slog.String("room_code", roomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	out := make([]D, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	ctx.JSON(http.StatusOK, out)
}
