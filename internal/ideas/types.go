package ideas

// Idea is one labeled item supplied by an external producer.
// The engine only references ideas, it never mutates them.
type Idea struct {
	ID          string `json:"id"`
	Phrase      string `json:"phrase"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Set is a loaded idea collection with its center label.
type Set struct {
	Center string `json:"center"`
	Ideas  []Idea `json:"ideas"`
}
