// Package web serves the embedded storefront. The page is a pure view over
// the JSON API: all business state lives server-side.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the storefront assets. Mount it under a prefix such as /app.
func Handler() http.Handler {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	return http.StripPrefix("/app", http.FileServer(http.FS(content)))
}
