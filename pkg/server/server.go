package server

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
	"github.com/trytobebee/gridsnake/pkg/input"
	"github.com/trytobebee/gridsnake/pkg/recorder"
	"golang.org/x/exp/rand"
)

//go:embed static
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // The page may be served from another origin during development
	},
}

// Config wires the server to its collaborators
type Config struct {
	BoardSize    int
	TickInterval time.Duration
	StaticDir    string             // Empty serves the embedded page
	Store        game.ScoreStore    // Shared by every connection, may be nil
	Recorder     *recorder.Recorder // Optional round history, tagged per connection
	Seed         uint64             // Non-zero makes food placement reproducible
}

// Server hosts one game per websocket connection
type Server struct {
	cfg       Config
	store     game.ScoreStore
	activeIPs sync.Map
	games     sync.WaitGroup
	mu        sync.Mutex
	seq       uint64
}

// New builds a server. Zero sizes fall back to the config defaults.
func New(cfg Config) *Server {
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = config.BoardSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = config.TickInterval
	}
	s := &Server{cfg: cfg}
	if cfg.Store != nil {
		s.store = &sharedBest{store: cfg.Store}
	}
	return s
}

// Handler serves the page on / and the game socket on config.WebSocketPath
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(s.staticFS()))
	mux.HandleFunc(config.WebSocketPath, s.handleWebSocket)
	return mux
}

// Wait blocks until every game loop has returned. Games end when their socket
// closes or when the request context is cancelled, so callers cancel the
// http.Server base context before waiting.
func (s *Server) Wait() {
	s.games.Wait()
}

func (s *Server) staticFS() http.FileSystem {
	if s.cfg.StaticDir != "" {
		return http.Dir(s.cfg.StaticDir)
	}
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // The embedded tree is fixed at build time
	}
	return http.FS(sub)
}

func (s *Server) newRand() *rand.Rand {
	if s.cfg.Seed == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return rand.New(rand.NewSource(s.cfg.Seed + s.seq - 1))
}

func (s *Server) roundEnded(session string) func(game.RoundResult) {
	if s.cfg.Recorder == nil {
		return nil
	}
	return func(res game.RoundResult) {
		s.cfg.Recorder.RecordSession(session, res)
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer ws.Close()

	ip := remoteIP(r)
	if _, loaded := s.activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected", ip)
		ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer s.activeIPs.Delete(ip)
	s.games.Add(1)
	defer s.games.Done()

	conn := &Conn{ID: uuid.NewString(), ws: ws}
	log.Printf("New connection %s from %s", conn.ID, r.RemoteAddr)
	defer log.Printf("Connection %s closed", conn.ID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The config frame must precede the first state frame drawn by NewGame
	boardCfg := game.BoardConfig{Size: s.cfg.BoardSize, TickMs: s.cfg.TickInterval.Milliseconds()}
	if err := conn.Send(ServerMessage{Type: MsgConfig, Session: conn.ID, Config: &boardCfg}); err != nil {
		log.Printf("write error (%s): %v", conn.ID, err)
		return
	}

	g, err := game.NewGame(ctx, game.Config{
		BoardSize:    s.cfg.BoardSize,
		TickInterval: s.cfg.TickInterval,
		Rand:         s.newRand(),
		OnRoundEnd:   s.roundEnded(conn.ID),
	}, &socketDisplay{conn: conn}, s.store)
	if err != nil {
		log.Printf("failed to start game for %s: %v", conn.ID, err)
		return
	}

	actions := make(chan game.Action, 16)
	go s.readLoop(ctx, conn, actions)

	if err := g.Run(ctx, actions); err != nil && err != context.Canceled {
		log.Printf("game loop for %s ended: %v", conn.ID, err)
	}
}

// readLoop forwards browser actions until the socket fails, then closes actions
func (s *Server) readLoop(ctx context.Context, conn *Conn, actions chan<- game.Action) {
	defer close(actions)
	for {
		var msg ClientMessage
		if err := conn.ws.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("read error (%s): %v", conn.ID, err)
			}
			return
		}
		a := input.FromName(msg.Action)
		if a == game.ActionNone {
			continue
		}
		select {
		case actions <- a:
		case <-ctx.Done():
			return
		}
	}
}
