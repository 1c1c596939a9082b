package export

import (
	"encoding/json"
	"fmt"
	"io"
)

func init() {
	Register("json", func() Exporter { return &JSON{Indent: "  "} })
}

// JSON writes the report as indented JSON.
type JSON struct {
	Indent string
}

func (x *JSON) Export(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", x.Indent)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("json export: %w", err)
	}
	return nil
}
