package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/feed"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/orderwatch"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	frameBuffer = 16
)

const (
	FrameBoard    = "board"
	FrameNewOrder = "new_order"
	FrameError    = "error"
)

// Frame is one message pushed to a shop owner's live board connection.
type Frame struct {
	Type    string            `json:"type"`
	Board   *orderwatch.Board `json:"board,omitempty"`
	Order   *models.Order     `json:"order,omitempty"`
	Alert   string            `json:"alert,omitempty"`
	Message string            `json:"message,omitempty"`
}

type LiveHandler struct {
	shopService service.ShopService
	source      feed.Source
	upgrader    websocket.Upgrader
}

func NewLiveHandler(shopService service.ShopService, source feed.Source, allowedOrigins []string) *LiveHandler {
	return &LiveHandler{
		shopService: shopService,
		source:      source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowedOrigins) == 0 || origin == "" {
					return true
				}
				return slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Board streams the owner's order board over a websocket. The first frame is
// the full board; afterwards every change pushes a new board and every new
// pending order is announced once with a new_order frame.
func (h *LiveHandler) Board() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		shop, err := h.shopService.GetMyShop(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Live board requested without a shop", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		logger = logger.With(slog.String("shopId", shop.ID.String()))

		ctx, cancel := context.WithCancel(r.Context())

		frames := make(chan Frame, frameBuffer)
		send := func(f Frame) {
			select {
			case frames <- f:
			case <-ctx.Done():
			}
		}

		watcher, err := orderwatch.Watch(ctx, h.source, shop.ID,
			orderwatch.WithNewOrderHandler(func(order models.Order) {
				send(Frame{Type: FrameNewOrder, Order: &order, Alert: "sound"})
			}),
			orderwatch.WithUpdateHandler(func(board orderwatch.Board) {
				send(Frame{Type: FrameBoard, Board: &board})
			}),
			orderwatch.WithErrorHandler(func(err error) {
				send(Frame{Type: FrameError, Message: err.Error()})
			}),
		)
		if err != nil {
			logger.Error("Failed to start order watcher", slog.String("error", err.Error()))
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "order feed unavailable"),
				time.Now().Add(writeWait))
			cancel()
			conn.Close()
			return
		}

		logger.Info("📡 Live board connected")

		go readPump(conn, cancel)

		writePump(ctx, conn, frames, watcher.Done(), logger)

		cancel()
		watcher.Close()
		conn.Close()

		logger.Info("Live board disconnected")
	}
}

// readPump only drains control frames; the board is read only.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {

	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, frames <-chan Frame, watcherDone <-chan struct{}, logger *slog.Logger) {

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case frame := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				logger.Warn("Failed to write live frame", slog.String("error", err.Error()))
				return
			}

			if frame.Type == FrameError {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseInternalServerErr, frame.Message),
					time.Now().Add(writeWait))
				return
			}

		case <-watcherDone:
			// the error frame, if any, is queued before done closes
			for len(frames) > 0 {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(<-frames); err != nil {
					return
				}
			}
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
