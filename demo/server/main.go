package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	tilejson "github.com/mr1sunshine/go-tilejson"
)

func osmDocument() *tilejson.TileJSON {
	name := "OpenStreetMap"
	description := "A free editable map of the whole world."
	attribution := "(c) OpenStreetMap contributors, CC-BY-SA"

	tj := tilejson.New()
	tj.Name = &name
	tj.Description = &description
	tj.Attribution = &attribution
	tj.Tiles = []string{
		"https://a.tile.openstreetmap.org/{z}/{x}/{y}.png",
		"https://b.tile.openstreetmap.org/{z}/{x}/{y}.png",
		"https://c.tile.openstreetmap.org/{z}/{x}/{y}.png",
	}
	tj.MaxZoom = 19
	tj.SetCenter(orb.Point{13.4050, 52.5200}, 10)

	return tj
}

func main() {
	tj := osmDocument()
	if err := tj.Validate(); err != nil {
		log.Fatalf("Invalid tileset metadata: %v", err)
	}

	metadata, err := tilejson.Encode(tj)
	if err != nil {
		log.Fatalf("Failed to encode TileJSON: %v", err)
	}

	// Metadata endpoint
	http.HandleFunc("/tilejson.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(metadata)
	})

	// Redirect /tiles/{z}/{x}/{y} to the upstream endpoint the document
	// advertises, demonstrating template expansion.
	http.HandleFunc("/tiles/", func(w http.ResponseWriter, r *http.Request) {
		tile, ok := parseTilePath(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}

		url, err := tj.TileURL(tile)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, url, http.StatusFound)
	})

	log.Println("Server starting on http://localhost:8080")
	log.Println("Metadata at http://localhost:8080/tilejson.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

// parseTilePath extracts z/x/y from a path like /tiles/10/550/335.
func parseTilePath(path string) (maptile.Tile, bool) {
	parts := strings.Split(strings.TrimPrefix(path, "/tiles/"), "/")
	if len(parts) != 3 {
		return maptile.Tile{}, false
	}

	var zxy [3]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return maptile.Tile{}, false
		}
		zxy[i] = uint32(n)
	}

	return maptile.New(zxy[1], zxy[2], maptile.Zoom(zxy[0])), true
}
