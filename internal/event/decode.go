package event

import "encoding/json"

// DecodePayload converts an event payload into T. Payloads published on the
// in-process bus already are T; payloads read back from the dead-letter file
// are generic maps and go through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if v, ok := input.(*T); ok && v != nil {
		return *v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
