// Package schemas holds the JSON Schema documents for the portfolio data files.
package schemas

import "embed"

//go:embed *.schema.json
var files embed.FS

// Schema file names
const (
	MetricsSchema        = "metrics.schema.json"
	ContactMessageSchema = "contact_message.schema.json"
)

// Load returns the content of an embedded schema file.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MustLoad is like Load but panics when the schema is not embedded.
func MustLoad(name string) string {
	content, err := Load(name)
	if err != nil {
		panic(err)
	}
	return content
}
