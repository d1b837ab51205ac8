package flag

import (
	"encoding/json"
	"fmt"
)

// mergeDocument deep merges update into the JSON object stored in current and
// returns the encoded result. Nested objects merge recursively, every other
// value overwrites.
func mergeDocument(current []byte, update map[string]any) ([]byte, error) {
	target, err := decodeObject(current)
	if err != nil {
		return nil, err
	}

	source, err := normalize(update)
	if err != nil {
		return nil, err
	}

	mergeObject(target, source)
	return json.Marshal(target)
}

// deleteDocumentKey removes field from the JSON object in current.
func deleteDocumentKey(current []byte, field string) ([]byte, bool, error) {
	target, err := decodeObject(current)
	if err != nil {
		return nil, false, err
	}
	if _, ok := target[field]; !ok {
		return current, false, nil
	}
	delete(target, field)
	encoded, err := json.Marshal(target)
	return encoded, true, err
}

// decodeEntries splits the stored object into its top level entries.
func decodeEntries(raw []byte) (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)
	if len(raw) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode flag document: %w", err)
	}
	return entries, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	object := make(map[string]any)
	if len(raw) == 0 {
		return object, nil
	}
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, fmt.Errorf("decode flag document: %w", err)
	}
	if object == nil {
		object = make(map[string]any)
	}
	return object, nil
}

// normalize round-trips value through JSON so structs and typed maps become
// plain map[string]any trees.
func normalize(value map[string]any) (map[string]any, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode flag update: %w", err)
	}
	return decodeObject(encoded)
}

func mergeObject(target, source map[string]any) {
	for key, value := range source {
		sourceObject, sourceIsObject := value.(map[string]any)
		targetObject, targetIsObject := target[key].(map[string]any)
		if sourceIsObject && targetIsObject {
			mergeObject(targetObject, sourceObject)
			continue
		}
		target[key] = value
	}
}
