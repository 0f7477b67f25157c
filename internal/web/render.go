package web

import (
	"embed"

	"github.com/unrolled/render"
)

//go:embed templates
var templatesFS embed.FS

// newRenderer builds the HTML renderer over the embedded templates.
func newRenderer() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		FileSystem: &render.EmbedFileSystem{FS: templatesFS},
		Extensions: []string{".tmpl"},
		Layout:     "layout",
	})
}

// page carries the fields every template and the layout expect.
type page struct {
	Title       string
	ServiceName string
}
