package config

import (
	"encoding/json"
	"fmt"
	"strings"

	schemaData "github.com/gopak/minigrep/schema"
	"github.com/xeipuuv/gojsonschema"
)

var commandsSchema = gojsonschema.NewBytesLoader(schemaData.Bytes)

// ValidateAgainstSchema checks the allow-list against the embedded
// commands schema and lists every violation in one error.
func ValidateAgainstSchema(cmds Commands) error {
	doc, err := json.Marshal(cmds)
	if err != nil {
		return fmt.Errorf("commands schema: %w", err)
	}
	res, err := gojsonschema.Validate(commandsSchema, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("commands schema: %w", err)
	}
	if res.Valid() {
		return nil
	}
	violations := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		violations = append(violations, e.Field()+": "+e.Description())
	}
	return fmt.Errorf("commands schema: %s", strings.Join(violations, "; "))
}
