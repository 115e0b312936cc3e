package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served from the same origin; embedded use only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsStart is the client's first frame: the puzzle plus the per-step
// delay used to throttle the animation.
type wsStart struct {
	Grid    domain.Grid `json:"grid"`
	DelayMs int         `json:"delayMs"`
}

// wsControl frames may arrive at any time during the run.
type wsControl struct {
	Action string `json:"action"` // "pause" | "continue" | "stop"
}

type wsCellMsg struct {
	Type       string  `json:"type"` // "cell"
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Value      uint8   `json:"value"`
	Candidates []uint8 `json:"candidates,omitempty"`
	Valid      bool    `json:"valid"`
}

type wsDoneMsg struct {
	Type       string      `json:"type"` // "done"
	Session    string      `json:"session"`
	Outcome    string      `json:"outcome"`
	Grid       domain.Grid `json:"grid"`
	Passes     int         `json:"passes"`
	Guesses    int         `json:"guesses"`
	DurationMs int64       `json:"durationMs"`
}

// handleSolveWS runs one live solving session over a websocket. Every
// board mutation is streamed as a cell frame; the peer may pause,
// resume or stop the engine at any time.
func (h *Handler) handleSolveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var start wsStart
	if err := conn.ReadJSON(&start); err != nil {
		return
	}
	session := uuid.NewString()
	eng := h.UC.NewEngine(start.Grid)
	if start.DelayMs > 0 {
		eng.SetStepDelay(time.Duration(start.DelayMs) * time.Millisecond)
	}

	// Control frames come in on a separate goroutine; the engine's
	// lifecycle flags are safe to flip from outside the solving loop.
	go func() {
		for {
			var ctl wsControl
			if err := conn.ReadJSON(&ctl); err != nil {
				eng.Stop()
				return
			}
			switch ctl.Action {
			case "pause":
				eng.Pause()
			case "continue":
				eng.Continue()
			case "stop":
				eng.Stop()
			}
		}
	}()

	// All writes happen from this goroutine only.
	outcome, st, _ := eng.Solve(r.Context(), func(c *domain.Cell) {
		_ = conn.WriteJSON(wsCellMsg{
			Type:       "cell",
			Row:        c.Row(),
			Col:        c.Col(),
			Value:      c.Value(),
			Candidates: c.Candidates().Values(),
			Valid:      c.IsValid(),
		})
	})
	_ = conn.WriteJSON(wsDoneMsg{
		Type:       "done",
		Session:    session,
		Outcome:    outcome.String(),
		Grid:       eng.Grid(),
		Passes:     st.Passes,
		Guesses:    st.Guesses,
		DurationMs: st.Duration.Milliseconds(),
	})
}
