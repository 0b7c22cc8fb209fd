package models

import "encoding/json"

// IndexRecord is one flat search record ready for a batched upsert. It is
// built fresh by the mapper on every run and discarded after the batch call.
//
// Either Fields carries the default-data triple at the root (localisation
// off) or Locales carries one nested block per locale (localisation on);
// the two shapes are never mixed within one run.
type IndexRecord struct {
	ObjectID string
	Fields   map[string]any
	Locales  map[string]map[string]any
}

// MarshalJSON flattens the record into the wire shape the index expects:
// all configured fields at the top level next to objectID, with locale
// blocks nested under "Locales".
func (r IndexRecord) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		m[k] = v
	}
	if r.ObjectID != "" {
		m["objectID"] = r.ObjectID
	}
	if len(r.Locales) > 0 {
		m["Locales"] = r.Locales
	}
	return json.Marshal(m)
}
