package types

// Post carries a denormalized owning-user id/name next to the category
// association; both foreign keys are enforced by the schema, not here.
type Post struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Img        string `json:"img"`
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
}

// PostRelation is one flattened (post, comment) pair from the relation query.
type PostRelation struct {
	PostID      int64  `json:"post_id"`
	Title       string `json:"title"`
	CommentID   int64  `json:"comment_id"`
	UserComment string `json:"user_comment"`
	Comment     string `json:"comment"`
}

type CreatePostRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Img        string `json:"img"`
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
}

type UpdatePostRequest struct {
	ID         int64   `json:"id"`
	Title      *string `json:"title,omitempty"`
	Body       *string `json:"body,omitempty"`
	Img        *string `json:"img,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
	UserID     *int64  `json:"user_id,omitempty"`
	UserName   *string `json:"user_name,omitempty"`
}
