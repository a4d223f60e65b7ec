package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type RealtimeController struct {
	RT      *services.RealtimeHub
	Metrics *services.MetricsService
	Log     logrus.FieldLogger
}

// constructor
func NewRealtimeController(rt *services.RealtimeHub, metrics *services.MetricsService, log logrus.FieldLogger) *RealtimeController {
	return &RealtimeController{RT: rt, Metrics: metrics, Log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const pingInterval = 25 * time.Second

// LiveMetrics streams metrics.updated frames for the caller: one on connect, then one
// after every meal write.
func (rc *RealtimeController) LiveMetrics(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return // Upgrade already answered the client
	}
	cl := &services.WSClient{UserID: id.UserID, Conn: conn}

	// register before the snapshot so no write between the two is lost
	rc.RT.Register(cl)
	current, err := rc.Metrics.ForOwner(c.Request.Context(), id.UserID)
	if err != nil {
		rc.Log.WithFields(logrus.Fields{"user_id": id.UserID, "error": err}).Error("live metrics bootstrap failed")
		_ = cl.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "metrics unavailable"))
		rc.RT.Unregister(cl)
		return
	}

	first, _ := json.Marshal(services.MetricsFrame(current))
	if err := cl.WriteMessage(websocket.TextMessage, first); err != nil {
		rc.RT.Unregister(cl)
		return
	}

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			rc.RT.Unregister(cl)
			return
		}
	}
}
