// Package templates bundles the HTML templates of the viewer.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strings"
	"sync"
)

//go:embed *.tmpl
var bundled embed.FS

// FS exposes the bundled template files.
func FS() fs.FS { return bundled }

// Funcs are available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"path": url.PathEscape,
	}
}

// Parse recursively discovers and parses all .tmpl files in fsys.
func Parse(fsys fs.FS) (*template.Template, error) {
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return template.New("_root").Funcs(Funcs()).ParseFS(fsys, files...)
}

var bundledOnce = sync.OnceValues(func() (*template.Template, error) {
	return Parse(bundled)
})

// Bundled returns the parsed embedded templates. The result is shared; it
// must be cloned before adding definitions.
func Bundled() (*template.Template, error) {
	return bundledOnce()
}
