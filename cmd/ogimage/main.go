package main

import (
	"flag"
	"log"
	"os"

	"github.com/venra/site/content"
	"github.com/venra/site/ogimage"
)

func main() {
	out := flag.String("out", "og-image.webp", "output file")
	flag.Parse()

	site, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}

	data, err := ogimage.Render(ogimage.FromSite(site))
	if err != nil {
		log.Fatalf("Failed to render share card: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d bytes)", *out, len(data))
}
