package http

// GameResponse is the JSON shape of one game.
type GameResponse struct {
	ID           string         `json:"id"`
	TargetCents  int            `json:"target_cents"`
	Target       string         `json:"target"`
	TotalCents   int            `json:"total_cents"`
	Total        string         `json:"total"`
	Status       string         `json:"status"`
	Feedback     string         `json:"feedback"`
	FeedbackText string         `json:"feedback_text"`
	Selection    map[string]int `json:"selection"`
	Controls     ControlsResp   `json:"controls"`
}

// ControlsResp tells the client which controls are enabled.
type ControlsResp struct {
	Select bool `json:"select"`
	Remove bool `json:"remove"`
	Clear  bool `json:"clear"`
	Check  bool `json:"check"`
	Reset  bool `json:"reset"`
}

type CoinResponse struct {
	Key    string `json:"key"`
	Cents  int    `json:"cents"`
	Value  string `json:"value"`
	Name   string `json:"name"`
	Plural string `json:"plural"`
	Glyph  string `json:"glyph"`
}

type CoinsResponse struct {
	Coins []CoinResponse `json:"coins"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
