package diffbot

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a generic parsed-JSON response. Diffbot's response shape
// varies per operation and evolves independently of this client, so there
// is no fixed schema: callers project out the fields they need with the
// accessors below.
type Document map[string]any

func parseDocument(body []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// String returns the string value under key.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Int returns the numeric value under key, truncated to int.
func (d Document) Int(key string) (int, bool) {
	f, ok := d[key].(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Float returns the numeric value under key.
func (d Document) Float(key string) (float64, bool) {
	f, ok := d[key].(float64)
	return f, ok
}

// Bool returns the boolean value under key.
func (d Document) Bool(key string) (bool, bool) {
	b, ok := d[key].(bool)
	return b, ok
}

// Object returns the nested object under key.
func (d Document) Object(key string) (Document, bool) {
	m, ok := d[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Array returns the array value under key.
func (d Document) Array(key string) ([]any, bool) {
	a, ok := d[key].([]any)
	return a, ok
}

// Objects returns the objects of the array under key, skipping any
// elements that are not objects. Useful for fields like "images" or
// "objects" that Diffbot returns as arrays of records.
func (d Document) Objects(key string) []Document {
	a, ok := d.Array(key)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(a))
	for _, v := range a {
		if m, ok := v.(map[string]any); ok {
			out = append(out, Document(m))
		}
	}
	return out
}
