package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed index.html static
var content embed.FS

// IndexPage returns the embedded front page.
func IndexPage() []byte {
	page, err := content.ReadFile("index.html")
	if err != nil {
		// index.html is compiled in; a failure here is a build problem.
		panic(err)
	}
	return page
}

// Assets serves the embedded static directory. Mount it under /static.
func Assets() fiber.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return filesystem.New(filesystem.Config{
		Root:   http.FS(sub),
		MaxAge: 3600,
	})
}
