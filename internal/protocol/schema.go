package protocol

import (
	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schemas/message.schema.json
	messageSchemaSource string

	//go:embed schemas/game_state.schema.json
	gameStateSchemaSource string

	messageSchema   = jsonschema.MustCompileString("message.schema.json", messageSchemaSource)
	gameStateSchema = jsonschema.MustCompileString("game_state.schema.json", gameStateSchemaSource)
)
