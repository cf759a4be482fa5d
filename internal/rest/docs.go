package rest

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/masterblog.json
var openAPIDoc []byte

// registerDocs serves the API documentation: the OpenAPI document itself and
// a Swagger UI page reading it, at the same paths the frontend expects.
func registerDocs(router *gin.Engine) {
	router.GET("/static/masterblog.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDoc)
	})

	router.GET("/api/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
	})
}

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Masterblog API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: "/static/masterblog.json",
                dom_id: "#swagger-ui"
            });
        };
    </script>
</body>
</html>
`
