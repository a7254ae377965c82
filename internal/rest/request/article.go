package request

// CreateArticleReq is the wrapped body for creating an article.
type CreateArticleReq struct {
	Article CreateArticleFields `json:"article" binding:"required"`
}

type CreateArticleFields struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList"`
}

// UpdateArticleReq carries a partial update; absent fields keep their value.
type UpdateArticleReq struct {
	Article UpdateArticleFields `json:"article" binding:"required"`
}

type UpdateArticleFields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
}
