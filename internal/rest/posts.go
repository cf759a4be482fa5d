package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dfryer1193/masterblog/api"
	"github.com/dfryer1193/masterblog/blog/application"
	"github.com/gin-gonic/gin"
)

// ListPosts returns the whole collection, optionally sorted by the sort and
// direction query parameters. Without a sort parameter the stored order is
// returned and direction is ignored.
func (a *PostsAPI) ListPosts(c *gin.Context) {
	posts, err := a.service.List(c.Request.Context(), c.Query("sort"), c.Query("direction"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost validates the request body and appends a new post to the
// collection.
func (a *PostsAPI) CreatePost(c *gin.Context) {
	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.service.Create(c.Request.Context(), application.PostDraft{
		Title:   proto.Title,
		Content: proto.Content,
		Author:  proto.Author,
		Date:    proto.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdatePost applies the request body to the addressed post. Only keys
// present in the body change; a missing or empty body leaves the post as it
// is and still returns it.
func (a *PostsAPI) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	patch := &api.PostPatch{}
	if err := c.ShouldBindJSON(patch); err != nil {
		if respondTypeError(c, err) {
			return
		}
		// An absent or malformed body counts as an empty patch.
		patch = &api.PostPatch{}
	}

	updated, err := a.service.Update(c.Request.Context(), id, application.PostPatch{
		Title:   patch.Title,
		Content: patch.Content,
		Author:  patch.Author,
		Date:    patch.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePost removes the addressed post from the collection.
func (a *PostsAPI) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	deleted, err := a.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Message{Message: fmt.Sprintf("Post %d has been deleted.", deleted)})
}

// postID parses the :id path segment. Anything that is not an integer is
// reported as an unknown post.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.Error{Error: "Post Not Found"})
		return 0, false
	}
	return id, true
}
