package request

// CreateGameRequest is the request body for creating a game. Either a
// preset name or explicit dimensions must be given; explicit values win.
type CreateGameRequest struct {
	Preset string `json:"preset,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
	Mines  int    `json:"mines,omitempty"`
}

// CellRequest is the request body for cell-addressed moves (reveal, flag,
// unflag)
type CellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
