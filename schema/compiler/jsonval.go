package compiler

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// kv is one key/value pair of a JSON object, in source order.
type kv struct {
	key   string
	value interface{}
}

// object is an ordered JSON object: a slice of kv pairs rather than a Go
// map, so field and default-value compilation can preserve the document's
// declaration order (§4.2's map-default ordering requirement) instead of
// the randomized iteration order of map[string]interface{}. Everything
// else in the DOM (null, bool, float64, string, []interface{}) is exactly
// the shape encoding/json would produce, per the teacher's own
// gogen-avro/v10/parser dispatch, which switches on that same shape.
type object []kv

func (o object) get(key string) (interface{}, bool) {
	for _, pair := range o {
		if pair.key == key {
			return pair.value, true
		}
	}
	return nil, false
}

// parseDocument decodes one JSON value from r using goccy/go-json's token
// Decoder, the same engine reoring-goskema's go-json driver tokenizes
// with, producing the ordered DOM shape this package's compiler walks.
// UseNumber mirrors that driver's NewReader: it makes Token() hand back a
// gojson.Number instead of a pre-rounded float64, which decodeFromToken
// then converts explicitly.
func parseDocument(r io.Reader) (interface{}, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *gojson.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *gojson.Decoder, tok gojson.Token) (interface{}, error) {
	switch v := tok.(type) {
	case gojson.Delim:
		switch rune(v) {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("avro schema: unexpected JSON delimiter %q", rune(v))
	case gojson.Number:
		return v.Float64()
	case string, bool, float64, nil:
		return v, nil
	default:
		return nil, fmt.Errorf("avro schema: unexpected JSON token %#v", tok)
	}
}

func decodeObject(dec *gojson.Decoder) (object, error) {
	var out object
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("avro schema: JSON object key must be a string, got %#v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, kv{key: key, value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeArray(dec *gojson.Decoder) ([]interface{}, error) {
	out := make([]interface{}, 0)
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
