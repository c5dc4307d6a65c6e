package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamReadLimit    = 1 << 20
)

// handleAnalyzeStream scores each {"text": ...} frame received on the socket
// and answers with one analysis frame. Bad frames get an error frame and the
// connection stays open.
func (s *Server) handleAnalyzeStream(c *gin.Context) {
	upgrader := websocket.Upgrader{
		HandshakeTimeout: 5 * time.Second,
		CheckOrigin:      s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("upgrade websocket")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(streamReadLimit)

	remote := conn.RemoteAddr().String()
	logrus.WithField("remote", remote).Info("analysis websocket connected")

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("remote", remote).Warn("analysis websocket unexpected close")
			} else {
				logrus.WithField("remote", remote).Info("analysis websocket closed")
			}
			return
		}

		var req AnalyzeRequest
		var reply any
		if err := binding.JSON.BindBody(payload, &req); err != nil {
			reply = gin.H{"error": bindError(err).Error()}
		} else {
			result := s.analyzer.Analyze(*req.Text)
			s.metrics.observe(result)
			reply = FromResult(result)
		}

		if err := writeJSON(conn, reply); err != nil {
			logrus.WithError(err).WithField("remote", remote).Warn("write analysis frame")
			return
		}
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" || s.allowAll {
		return true
	}
	for _, allowed := range s.allowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}

func writeJSON(conn *websocket.Conn, payload any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(payload)
}
