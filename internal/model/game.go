package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/trichess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection the game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // websocket writes must not interleave
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

type GameOptions struct {
	// Human is the colour moved by the owner; the other two are engines.
	Human Color
	// EngineDelay is waited between an engine's decision and playing it,
	// so that a person can follow the engine moves.
	EngineDelay time.Duration
}

// Game is one in-memory game between a human and two engine colours.
type Game struct {
	ID            string
	Owner         string
	mu            sync.Mutex
	board         *Board
	legal         []Move // legal moves of state.ToMove
	state         GameState
	human         Color
	engine        MoveSelector
	delay         time.Duration
	clocks        [NumColors]*Clock
	connections   *GameConnections
	engineRunning bool
}

type GameState struct {
	Sound    string            `json:"sound"`
	Position map[string]string `json:"position"`
	ToMove   Color             `json:"toMove"`
	Checked  []Color           `json:"checked"`
	Captured CapturedPieces    `json:"capturedPieces"`
	Resolve  *string           `json:"resolve"`
	Loser    *Color            `json:"loser"`
	LastMove *SimpleMove       `json:"lastMove"`
	Players  []ClientPlayer    `json:"players"`
}

// CapturedPieces lists pieces by the colour that captured them.
type CapturedPieces struct {
	White  []Piece `json:"white"`
	Black  []Piece `json:"black"`
	Orange []Piece `json:"orange"`
}

func (cp *CapturedPieces) add(by Color, p Piece) {
	switch by {
	case White:
		cp.White = append(cp.White, p)
	case Black:
		cp.Black = append(cp.Black, p)
	case Orange:
		cp.Orange = append(cp.Orange, p)
	}
}

func NewGame(id, owner string, engine MoveSelector, opts GameOptions) *Game {
	g := &Game{
		ID:          id,
		Owner:       owner,
		board:       NewBoard(true),
		human:       opts.Human,
		engine:      engine,
		delay:       opts.EngineDelay,
		connections: NewGameConnections(),
		state: GameState{
			ToMove: White,
			Captured: CapturedPieces{
				White:  make([]Piece, 0),
				Black:  make([]Piece, 0),
				Orange: make([]Piece, 0),
			},
		},
	}
	for _, c := range Colors {
		g.clocks[c] = NewClock()
	}
	g.clocks[White].Start()
	g.refresh()
	return g
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	s := g.state
	s.Players = make([]ClientPlayer, 0, NumColors)
	for _, c := range Colors {
		p := ClientPlayer{Color: c, Engine: c != g.human, TimeSpent: g.clocks[c].Client().TimeSpent}
		if c == g.human {
			p.ID = g.Owner
		}
		s.Players = append(s.Players, p)
	}
	return s
}

func (g *Game) HumanColor() Color {
	return g.human
}

func (g *Game) over() bool {
	return g.state.Resolve != nil
}

// MakeMove plays the owner's move given in square notation and sends the
// new state to every connection before returning.
func (g *Game) MakeMove(playerID, from, to string) error {
	if err := g.makeMove(playerID, from, to); err != nil {
		return err
	}
	g.broadcastState()
	return nil
}

func (g *Game) makeMove(playerID, from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over() {
		return ErrGameOver
	}
	if playerID != g.Owner {
		return ErrNotAuthorized
	}
	if g.state.ToMove != g.human {
		return ErrNotYourTurn
	}
	src, err := ParsePosition(from)
	if err != nil {
		return err
	}
	dst, err := ParsePosition(to)
	if err != nil {
		return err
	}
	if p, ok := g.board.PieceAt(src); !ok || p.Color != g.human {
		return ErrNoPiece
	}

	for _, m := range g.legal {
		if m.From == src && m.To == dst {
			log.Debugf("game %s: %s plays %s", g.ID, g.human, m)
			g.play(m)
			return nil
		}
	}
	return fmt.Errorf("%w: %s-%s", ErrIllegalMove, from, to)
}

// LegalMovesFrom lists the target squares of the piece on square if that
// piece belongs to the colour to move.
func (g *Game) LegalMovesFrom(square string) ([]string, error) {
	src, err := ParsePosition(square)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	targets := []string{}
	for _, m := range g.legal {
		if m.From == src {
			targets = append(targets, m.To.String())
		}
	}
	return targets, nil
}

// Hint asks the engine what it would play for the owner.
func (g *Game) Hint(playerID string) (SimpleMove, bool, error) {
	g.mu.Lock()
	if playerID != g.Owner {
		g.mu.Unlock()
		return SimpleMove{}, false, ErrNotAuthorized
	}
	if g.over() || g.state.ToMove != g.human {
		g.mu.Unlock()
		return SimpleMove{}, false, nil
	}
	b := g.board.Clone()
	g.mu.Unlock()

	m, ok := g.engine.SelectMove(b, g.human)
	if !ok {
		return SimpleMove{}, false, nil
	}
	return m.Simple(), true, nil
}

// PlayEngineTurns lets the engine move for every colour that is not the
// human's until it is the human's turn again or the game is over. Only
// one call runs per game at a time; others return ErrEngineBusy.
func (g *Game) PlayEngineTurns(ctx context.Context) error {
	g.mu.Lock()
	if g.engineRunning {
		g.mu.Unlock()
		return ErrEngineBusy
	}
	g.engineRunning = true
	g.mu.Unlock()

	for {
		g.mu.Lock()
		if g.over() || g.state.ToMove == g.human {
			// Cleared under the lock that saw the human's turn.
			g.engineRunning = false
			g.mu.Unlock()
			return nil
		}
		c := g.state.ToMove
		b := g.board.Clone()
		g.mu.Unlock()

		m, ok := g.engine.SelectMove(b, c)
		if !ok {
			// refresh resolves a colour without moves before its turn
			// starts, so this only happens with a broken selector.
			g.stopEngine()
			return fmt.Errorf("engine found no move for %s", c)
		}

		if err := g.wait(ctx); err != nil {
			g.stopEngine()
			return err
		}

		g.mu.Lock()
		log.Debugf("game %s: engine %s plays %s", g.ID, c, m)
		g.play(m)
		g.mu.Unlock()
		g.broadcastState()
	}
}

func (g *Game) stopEngine() {
	g.mu.Lock()
	g.engineRunning = false
	g.mu.Unlock()
}

// wait sleeps for the engine delay unless ctx ends first.
func (g *Game) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// play applies a legal move for the colour to move and hands the turn on.
func (g *Game) play(m Move) {
	mover := g.state.ToMove
	g.clocks[mover].Stop()

	captured, _ := g.board.MovePiece(m.From, m.To)
	g.state.Sound = "move"
	if captured.Kind != "" {
		g.state.Captured.add(mover, captured)
		g.state.Sound = "capture"
	}
	g.state.LastMove = &SimpleMove{From: m.From.String(), To: m.To.String()}

	g.state.ToMove = mover.Next()
	g.refresh()
	if len(g.state.Checked) > 0 && g.state.Sound == "move" {
		g.state.Sound = "check"
	}
	if !g.over() {
		g.clocks[g.state.ToMove].Start()
	}
}

// refresh recomputes the state derived from the board and ends the game
// when the colour to move has no legal moves.
func (g *Game) refresh() {
	g.state.Position = g.board.PositionObject()
	g.state.Checked = []Color{}
	for _, c := range Colors {
		if InCheck(g.board, c) {
			g.state.Checked = append(g.state.Checked, c)
		}
	}

	g.legal = LegalMoves(g.board, g.state.ToMove)
	if len(g.legal) > 0 {
		return
	}
	loser := g.state.ToMove
	result := "stalemate"
	if InCheck(g.board, loser) {
		result = "checkmate"
	}
	g.state.Resolve = &result
	g.state.Loser = &loser
	for _, c := range Colors {
		g.clocks[c].Stop()
	}
	log.Infof("game %s: %s has no legal moves (%s)", g.ID, loser, result)
}

func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return ErrConnectionExists
	}

	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Debugf("game %s: registered connection for player %s", g.ID, playerID)

	g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[playerID]; exists {
		log.Debugf("game %s: unregistering connection for player %s", g.ID, playerID)
		delete(g.connections.connections, playerID)
	}
}

// broadcastState holds the write lock while it takes the snapshot, so
// states reach every connection in the order they were taken.
func (g *Game) broadcastState() {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()

	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}

// SendMessage writes msg to the connection registered for playerID.
func (g *Game) SendMessage(playerID string, msg ws.Message) error {
	g.connections.mu.RLock()
	conn, ok := g.connections.connections[playerID]
	g.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no connection for player %s", playerID)
	}

	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}
