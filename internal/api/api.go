// Package api holds the OpenAPI document of the HTTP surface. The same
// document validates incoming requests and is served by the docs UI.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var Document []byte

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(Document)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(Document)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
