package attribute_parser

import (
	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain/trait"
)

// AttributeParser extracts trait pairs from one shape of on-chain record.
// It returns domain.ErrNotFound when the record is not of its shape or the
// shape holds no usable pair.
type AttributeParser interface {
	Name() string
	Parse(record gjson.Result) (trait.Selection, error)
}

// Decorator adjusts the pairs found by the parsers.
type Decorator interface {
	Decorate(record gjson.Result, traits trait.Selection) trait.Selection
}

const attributesKey = "attributes"

// rootPaths are the places a Move object's fields are found, most specific first.
var rootPaths = []string{"data.content.fields", "content.fields", "fields"}

// recordRoot returns the object holding the Move fields of a record.
func recordRoot(doc gjson.Result) gjson.Result {
	for _, path := range rootPaths {
		if r := doc.Get(path); r.IsObject() {
			return r
		}
	}
	if doc.IsObject() {
		return doc
	}
	return gjson.Result{}
}

// Fields returns the Move fields of a raw record, found the way Decode finds them.
func Fields(raw []byte) gjson.Result {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}
	}
	return recordRoot(gjson.ParseBytes(raw))
}

func objectId(doc gjson.Result) string {
	for _, path := range []string{"data.objectId", "objectId"} {
		if r := doc.Get(path); r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return ""
}

// scalar returns the text of a string or number value. Numbers keep the
// digits they were written with.
func scalar(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.String(), r.String() != ""
	case gjson.Number:
		return r.Raw, true
	default:
		return "", false
	}
}

// entryPair reads a {key, value} entry, found directly, under fields or
// under fields.fields.
func entryPair(entry gjson.Result) (string, string, bool) {
	for _, candidate := range []gjson.Result{entry, entry.Get("fields"), entry.Get("fields.fields")} {
		if !candidate.IsObject() {
			continue
		}
		key := candidate.Get("key")
		if key.Type != gjson.String || key.String() == "" {
			continue
		}
		if value, ok := scalar(candidate.Get("value")); ok {
			return key.String(), value, true
		}
	}
	return "", "", false
}
