package main

import (
	"flag"
	"log"
	"mime"
	"net/http"
)

func init() {
	// Some systems don't have a mime type registered for wasm, and browsers
	// refuse to stream-compile it without one
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		log.Printf("unable to register wasm mime type: %v", err)
	}
}

// main will start serving all files in the "dist" folder on the server
// on port 8080, ie. a "GOOS=js GOARCH=wasm" build of cmd/fishfiesta
func main() {
	dir := flag.String("dir", "./dist", "directory to serve")
	port := flag.String("port", ":8080", "address to listen on")
	flag.Parse()

	http.Handle("/", newHandler(*dir))

	log.Printf("Serving %s on %s...", *dir, *port)
	err := http.ListenAndServe(*port, nil)
	if err != nil {
		log.Fatal(err)
	}
}

func newHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the game is rebuilt often, don't let the browser hold onto stale builds
		w.Header().Set("Cache-Control", "no-cache")
		fs.ServeHTTP(w, r)
	})
}
