package api

// PostProto is the inbound shape for creating a post.
type PostProto struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// PostPatch is the inbound shape for updating a post. Pointer fields tell an
// omitted key apart from one set to an empty string; omitted keys leave the
// stored value alone.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
	Date    *string `json:"date"`
}

// Message is the envelope for informational responses.
type Message struct {
	Message string `json:"message"`
}

// Error is the envelope for error responses.
type Error struct {
	Error string `json:"error"`
}
