package types

type Comment struct {
	ID          int64  `json:"id"`
	PostID      int64  `json:"id_post_comment"`
	UserComment string `json:"user_comment"`
	Comment     string `json:"comment"`
}

type CreateCommentRequest struct {
	PostID      int64  `json:"id_post_comment"`
	UserComment string `json:"user_comment"`
	Comment     string `json:"comment"`
}

type UpdateCommentRequest struct {
	ID          int64   `json:"id"`
	PostID      *int64  `json:"id_post_comment,omitempty"`
	UserComment *string `json:"user_comment,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}
