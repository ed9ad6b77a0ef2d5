// Command tuningschema prints a JSON Schema describing the tuning file, for
// editors that validate YAML against a schema.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/milk9111/platformer/config"
)

func main() {
	out := flag.String("o", "", "write the schema to this file instead of stdout")
	flag.Parse()

	schema := jsonschema.Reflect(&config.Settings{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("tuningschema: marshal: %v", err)
	}
	data = append(data, '\n')

	if *out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("tuningschema: write: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("tuningschema: write %s: %v", *out, err)
	}
}
