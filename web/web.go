// Package web embeds the static storefront served next to the API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const placeholderImage = "images/placeholder.svg"

//go:embed public
var assets embed.FS

// Public returns the storefront rooted at its document root.
func Public() fs.FS {
	sub, err := fs.Sub(assets, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

// Images serves /images/{name} from root, answering with the placeholder
// artwork when the catalogue names a file that is not shipped.
func Images(root fs.FS) http.Handler {
	files := http.FileServer(http.FS(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		data, err := fs.ReadFile(root, placeholderImage)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(data)
	})
}
