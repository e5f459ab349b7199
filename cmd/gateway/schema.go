package main

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const schemaCheckout = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["provider", "items"],
  "properties": {
    "customer_email": { "type": "string", "format": "email" },
    "customer_name": { "type": "string", "maxLength": 200 },
    "customer_phone": { "type": "string", "maxLength": 40 },
    "provider": { "type": "string", "enum": ["stripe", "clip", "conekta", "mercadopago"] },
    "shipping_amount": { "type": "integer", "minimum": 0, "maximum": 100000000000 },
    "tax_amount": { "type": "integer", "minimum": 0, "maximum": 100000000000 },
    "shipping": {
      "type": "object",
      "properties": {
        "name": { "type": "string" },
        "address": { "type": "string" },
        "city": { "type": "string" },
        "country": { "type": "string" },
        "postal_code": { "type": "string" }
      },
      "additionalProperties": false
    },
    "items": {
      "type": "array",
      "minItems": 1,
      "maxItems": 100,
      "items": {
        "type": "object",
        "required": ["product_id", "quantity"],
        "properties": {
          "product_id": { "type": "string", "minLength": 1 },
          "quantity": { "type": "integer", "minimum": 1, "maximum": 1000 },
          "unit_amount": { "type": "integer", "minimum": 0, "maximum": 100000000000 },
          "variant_size": { "type": "string" },
          "variant_color": { "type": "string" }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

const schemaQuote = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "minItems": 1,
      "maxItems": 100,
      "items": {
        "type": "object",
        "required": ["product_id", "quantity"],
        "properties": {
          "product_id": { "type": "string", "minLength": 1 },
          "quantity": { "type": "integer", "minimum": 1, "maximum": 1000 },
          "variant_size": { "type": "string" },
          "variant_color": { "type": "string" }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	checkoutLoader = gojsonschema.NewStringLoader(schemaCheckout)
	quoteLoader    = gojsonschema.NewStringLoader(schemaQuote)
)

func validateJSONSchema(schemaLoader gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("request does not conform to schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
