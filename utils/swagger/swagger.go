package swagger

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SwaggerConfig struct {
	Title         string
	SwaggerDocURL string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui.css" />
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    *, *:before, *:after { box-sizing: inherit; }
    body { margin: 0; background: #fafafa; }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      SwaggerUIBundle({
        url: "{{.SwaggerDocURL}}",
        dom_id: "#swagger-ui",
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
        layout: "BaseLayout"
      });
    };
  </script>
</body>
</html>`

var swaggerTemplate = template.Must(template.New("swagger").Parse(swaggerHTML))

// ServeSwagger renders the swagger UI page pointed at the service's
// OpenAPI document.
func ServeSwagger(config SwaggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := swaggerTemplate.Execute(c.Writer, config); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}
