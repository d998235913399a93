// Package web embeds the browser client.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// Index returns the single-page client.
func Index() []byte {
	b, err := files.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return b
}

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
