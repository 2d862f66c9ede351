package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"pantry-backend-go/internal/services"
)

type MetricsHistoryResponse struct {
	Items []services.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestMetrics(s.DB, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: items})
}

// MetricsSocket feeds the admin dashboard live samples. The browser sends
// the session cookie on the upgrade request, so the gate is the same as for
// the JSON admin routes.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionIdentity(r, s.Sessions, s.Cookies); !ok {
		WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
