package dto

type Position struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type MoveResult struct {
	Position int        // Effective position after clamping
	Items    []Position // Destination group in order
}
