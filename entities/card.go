package entities

// Card is a unit of training content selected as generation input.
// Cards arrive from the selection collaborator and are never mutated here.
type Card struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
