// Package schema embeds the JSON schema for the command allow-list.
package schema

import _ "embed"

//go:embed commands.schema.json
var Bytes []byte
