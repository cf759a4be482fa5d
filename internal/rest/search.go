package rest

import (
	"net/http"

	"github.com/dfryer1193/masterblog/blog/application"
	"github.com/gin-gonic/gin"
)

// SearchPosts returns posts matching every supplied filter parameter.
// Without any filter the result is empty, it never falls back to listing
// everything.
func (a *PostsAPI) SearchPosts(c *gin.Context) {
	filter := application.SearchFilter{
		Title:   c.Query("title"),
		Content: c.Query("content"),
		Author:  c.Query("author"),
		Date:    c.Query("date"),
	}

	posts, err := a.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
