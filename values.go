package formstate

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// ValuesFromJSON decodes a JSON object into a data tree. Numbers are kept
// as json.Number so no precision is lost before validation sees them.
func ValuesFromJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValuesToJSON serializes a data tree.
func ValuesToJSON(values map[string]any) ([]byte, error) {
	return json.Marshal(values)
}

// MarshalJSON renders the metadata tree for presentation layers: leaves as
// {"touched","errors"}, containers as their children plus an "errors" list
// of container-level messages.
func (n *StateNode) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case StateObject:
		return json.Marshal(struct {
			Errors []string              `json:"errors"`
			Fields map[string]*StateNode `json:"fields"`
		}{n.Errors, n.Fields})
	case StateArray:
		items := n.Items
		if items == nil {
			items = []*StateNode{}
		}
		return json.Marshal(struct {
			Errors []string     `json:"errors"`
			Items  []*StateNode `json:"items"`
		}{n.Errors, items})
	default:
		return json.Marshal(struct {
			Touched bool     `json:"touched"`
			Errors  []string `json:"errors"`
		}{n.Touched, n.Errors})
	}
}
