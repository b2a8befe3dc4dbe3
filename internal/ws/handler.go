package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/config"
	hintService "github.com/hexathon/quiz-backend/internal/hint/service"
	teamService "github.com/hexathon/quiz-backend/internal/team/service"
)

type hintBroadcast struct {
	Type string `json:"type"`
	Hint string `json:"hint"`
}

type lockBroadcast struct {
	Type     string `json:"type"`
	TeamName string `json:"team_name"`
	Message  string `json:"message"`
}

type lockAllBroadcast struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorReply struct {
	Error string `json:"error"`
}

type messageReply struct {
	Message string `json:"message"`
}

// Handler upgrades HTTP requests to websocket connections and dispatches
// inbound operator events.
type Handler struct {
	hub      *Hub
	hints    hintService.Service
	teams    teamService.Service
	upgrader websocket.Upgrader
	maxSize  int64
	logger   *zap.SugaredLogger
}

// New creates a websocket handler instance.
func New(hub *Hub, hints hintService.Service, teams teamService.Service, cfg config.WebsocketConfig, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		hub:   hub,
		hints: hints,
		teams: teams,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		maxSize: cfg.MaxMessageSize,
		logger:  logger,
	}
}

// Serve handles GET /ws. It registers the connection with the hub and reads
// inbound events until the client disconnects.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(h.maxSize)

	client := NewClient(conn, h.logger)
	h.hub.Register(client)
	h.logger.Infow("websocket client connected", "remote_addr", conn.RemoteAddr().String())

	defer func() {
		h.hub.Unregister(client)
		client.Close()
		h.logger.Infow("websocket client disconnected", "remote_addr", conn.RemoteAddr().String())
	}()

	ctx := c.Request.Context()
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.dispatch(ctx, client, payload)
	}
}

func (h *Handler) dispatch(ctx context.Context, sender *Client, payload []byte) {
	event, err := DecodeEvent(payload)
	if err != nil {
		h.logger.Debugw("malformed websocket message", "error", err)
		return
	}

	switch ev := event.(type) {
	case HintEvent:
		h.handleHint(ctx, sender, ev)
	case LockEvent:
		h.handleLock(ctx, sender, ev)
	case LockAllEvent:
		h.handleLockAll(ctx, sender, ev)
	case UnknownEvent:
		h.logger.Debugw("unhandled websocket event", "type", ev.Type)
	}
}

// handleHint broadcasts the hint before persisting it. Every connected
// client, sender included, sees the hint even if the save later fails;
// the save failure is reported to the sender alone.
func (h *Handler) handleHint(ctx context.Context, sender *Client, ev HintEvent) {
	if strings.TrimSpace(ev.HintText) == "" {
		h.logger.Errorw("invalid hint text", "hint_text", ev.HintText)
		h.reply(sender, errorReply{Error: "Invalid hintText provided"})
		return
	}

	h.broadcastJSON(hintBroadcast{Type: TypeHint, Hint: ev.HintText})

	if _, err := h.hints.Create(ctx, ev.HintText); err != nil {
		h.logger.Errorw("error saving hint", "error", err)
		h.reply(sender, errorReply{Error: "Failed to save hint"})
	}
}

func (h *Handler) handleLock(ctx context.Context, sender *Client, ev LockEvent) {
	eventType := TypeUnlock
	verb := "unlocked"
	if ev.Lock {
		eventType = TypeLock
		verb = "locked"
	}

	if err := h.teams.SetLock(ctx, ev.TeamName, ev.Lock); err != nil {
		h.logger.Errorw("error updating team lock", "team_name", ev.TeamName, "error", err)
		h.reply(sender, messageReply{Message: fmt.Sprintf("Failed to %s team %s", eventType, ev.TeamName)})
		return
	}

	h.broadcastJSON(lockBroadcast{
		Type:     eventType,
		TeamName: ev.TeamName,
		Message:  fmt.Sprintf("Team %s %s!", ev.TeamName, verb),
	})
}

func (h *Handler) handleLockAll(ctx context.Context, sender *Client, ev LockAllEvent) {
	eventType := TypeUnlockAll
	verb := "unlocked"
	if ev.Lock {
		eventType = TypeLockAll
		verb = "locked"
	}

	if err := h.teams.SetAllLocks(ctx, ev.Lock); err != nil {
		h.logger.Errorw("error updating all team locks", "error", err)
		h.reply(sender, messageReply{Message: fmt.Sprintf("Failed to %s all teams", eventType)})
		return
	}

	h.broadcastJSON(lockAllBroadcast{
		Type:    eventType,
		Message: fmt.Sprintf("All teams %s!", verb),
	})
}

func (h *Handler) broadcastJSON(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Errorw("error encoding broadcast", "error", err)
		return
	}
	h.hub.Broadcast(payload)
}

// reply sends a message to the sender only.
func (h *Handler) reply(sender *Client, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Errorw("error encoding reply", "error", err)
		return
	}
	_ = sender.Send(payload)
}
