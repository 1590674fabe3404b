package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"infragraph/cascade"
	"infragraph/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboard runs same-host; tighten if exposed
	},
}

// BroadcastMessage is the envelope pushed to every dashboard client.
type BroadcastMessage struct {
	ID      string      `json:"id"` // per-broadcast uuid
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans broadcast messages out to all connected dashboard clients
// and serves the query API.
type Hub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan BroadcastMessage
	svc       *cascade.Service
	mu        sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan BroadcastMessage),
	}
}

// SetService wires the cascade engine used by the HTTP query surface.
func (h *Hub) SetService(svc *cascade.Service) {
	h.svc = svc
}

func (h *Hub) Run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteJSON(msg); err != nil {
				logger.Warn(logger.StatusNet, "WS error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

func (h *Hub) Broadcast(msgType string, payload interface{}) {
	h.broadcast <- BroadcastMessage{
		ID:      uuid.NewString(),
		Type:    msgType,
		Payload: payload,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn(logger.StatusNet, "WS upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	conn.WriteJSON(BroadcastMessage{ID: uuid.NewString(), Type: "system", Payload: "Connected to Infragraph stream"})
}

// HandleCascade answers GET /api/cascade?source=<id>&level=<0..1>.
// An unknown source id is a 404 with a JSON body, mirroring the
// engine's nil result.
func (h *Hub) HandleCascade(w http.ResponseWriter, r *http.Request) {
	sourceID := r.URL.Query().Get("source")
	if sourceID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing source parameter"})
		return
	}

	level := 1.0
	if raw := r.URL.Query().Get("level"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid level parameter"})
			return
		}
		level = parsed
	}

	result := h.svc.Calculate(sourceID, level)
	if result == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown source id: " + sourceID})
		return
	}

	go h.Broadcast("cascade_result", result)
	writeJSON(w, http.StatusOK, result)
}

// HandleStats answers GET /api/stats with the graph's diagnostic
// counts.
func (h *Hub) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

// HandleGraph answers GET /api/graph with the full node/edge list for
// dashboard rendering.
func (h *Hub) HandleGraph(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetOrBuild().ToJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// StartServer registers the API and starts listening in the
// background.
func StartServer(h *Hub, port string) {
	http.HandleFunc("/ws", h.HandleWebSocket)
	http.HandleFunc("/api/cascade", h.HandleCascade)
	http.HandleFunc("/api/stats", h.HandleStats)
	http.HandleFunc("/api/graph", h.HandleGraph)
	http.Handle("/metrics", promhttp.Handler())
	http.Handle("/", http.FileServer(http.Dir("./public")))

	logger.Info(logger.StatusNet, "WebSocket server started on ws://localhost%s/ws", port)
	logger.Info(logger.StatusNet, "Dashboard API available at http://localhost%s/api", port)

	go func() {
		if err := http.ListenAndServe(port, nil); err != nil {
			logger.Error(logger.StatusErr, "ListenAndServe: %v", err)
		}
	}()
}
