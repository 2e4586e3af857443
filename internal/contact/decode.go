package contact

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/csm-portfolio/internal/schemas"
	"github.com/jonathan/csm-portfolio/internal/types"
	schemafiles "github.com/jonathan/csm-portfolio/schemas"
)

var (
	messageSchemaOnce sync.Once
	messageSchema     *schemas.Schema
	messageSchemaErr  error
)

func contactSchema() (*schemas.Schema, error) {
	messageSchemaOnce.Do(func() {
		content, err := schemafiles.Load(schemafiles.ContactMessageSchema)
		if err != nil {
			messageSchemaErr = err
			return
		}
		messageSchema, messageSchemaErr = schemas.Compile(schemafiles.ContactMessageSchema, content)
	})
	return messageSchema, messageSchemaErr
}

// Decode checks a raw submission against the contact message schema and unmarshals it.
// Shape problems (wrong types, unknown or missing properties) are reported as
// *schemas.ValidationError and unparseable input as *schemas.DocumentError; field
// content rules are left to Validate.
func Decode(raw []byte) (types.ContactMessage, error) {
	schema, err := contactSchema()
	if err != nil {
		return types.ContactMessage{}, err
	}
	if err := schema.Validate(raw); err != nil {
		return types.ContactMessage{}, err
	}

	var msg types.ContactMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return types.ContactMessage{}, fmt.Errorf("failed to decode contact message: %w", err)
	}
	return msg, nil
}
