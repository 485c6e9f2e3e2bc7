//go:build ignore

// Generates the ent client for the quote entities into gen/ent.
// Run from the repo root: go run db/ent/generate.go
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/Akash-sopho/email-extractor-agent/gen/ent",
			Schema:  "github.com/Akash-sopho/email-extractor-agent/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
