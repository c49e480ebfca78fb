package dto

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type CreateTweetRequest struct {
	Content string `json:"content"`
}

type UpdateTweetRequest struct {
	Content string `json:"content"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToggleResponse reports which side of the flip a toggle landed on:
// "created" (now present) or "deleted" (now absent).
type ToggleResponse struct {
	Status string `json:"status"`
}
