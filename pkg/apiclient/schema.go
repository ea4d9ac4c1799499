/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apiclient

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	ErrUnknownSchema  = errors.New("unknown schema")
	ErrSchemaMismatch = errors.New("body does not match schema")
	ErrNotJSON        = errors.New("response is not json")
)

// Component schema names in the embedded document.
const (
	SchemaPost        = "Post"
	SchemaPostWrite   = "PostWrite"
	SchemaPostList    = "PostList"
	SchemaComment     = "Comment"
	SchemaCommentList = "CommentList"
)

//go:embed openapi.yaml
var schemaDocument []byte

// Validator checks bodies against the component schemas of the API document.
type Validator struct {
	doc *openapi3.T
}

// NewValidator loads and validates the embedded API document.
func NewValidator() (*Validator, error) {
	return NewValidatorFromData(schemaDocument)
}

// NewValidatorFromData loads an OpenAPI 3 document from JSON or YAML.
func NewValidatorFromData(data []byte) (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return &Validator{
		doc: doc,
	}, nil
}

// Validate decodes body and checks it against the named schema.
func (v *Validator) Validate(name string, body []byte) error {
	if v.doc.Components == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	ref, ok := v.doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSchemaMismatch, name, err)
	}

	return nil
}

// ValidateResponse checks the response declares JSON and matches the schema.
func (v *Validator) ValidateResponse(name string, resp *Response) error {
	if !resp.IsJSON() {
		return fmt.Errorf("%w: content type %q", ErrNotJSON, resp.Header.Get("Content-Type"))
	}

	return v.Validate(name, resp.Body)
}
