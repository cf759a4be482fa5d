package rest

import (
	"github.com/dfryer1193/masterblog/blog/application"
	"github.com/gin-gonic/gin"
)

// PostsAPI exposes the post collection over HTTP.
type PostsAPI struct {
	service *application.PostService
}

// NewApi registers all routes on the router and returns the API for tests.
func NewApi(router *gin.Engine, service *application.PostService) *PostsAPI {
	api := &PostsAPI{service: service}

	posts := router.Group("/api/posts")
	{
		posts.GET("", api.ListPosts)
		posts.POST("", api.CreatePost)
		posts.PUT("/:id", api.UpdatePost)
		posts.DELETE("/:id", api.DeletePost)
		posts.GET("/search", api.SearchPosts)
	}

	registerDocs(router)

	return api
}
