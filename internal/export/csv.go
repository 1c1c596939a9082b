package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

func init() {
	Register("csv", func() Exporter { return &CSV{} })
}

// CSV writes the report's entries, one row per request.
type CSV struct{}

func (x *CSV) Export(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ip", "timestamp", "method", "path", "status", "size"}); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	for _, e := range r.Entries {
		row := []string{
			e.IP,
			e.Timestamp.Format(time.RFC3339),
			e.Method,
			e.Path,
			strconv.Itoa(e.Status),
			strconv.FormatInt(e.Size, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	return nil
}
