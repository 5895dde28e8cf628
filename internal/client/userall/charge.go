package userall

import (
	"encoding/json"
	"fmt"
)

// zeroStock - значение stock для повторной отправки билета
var zeroStock = json.RawMessage("0")

// ResetChargeStock обнуляет stock >= 0 в записях userChargeList. Остальные
// поля и записи с отрицательным stock передаются без изменений.
func ResetChargeStock(records []json.RawMessage) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(records))
	for i, rec := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rec, &fields); err != nil {
			return nil, fmt.Errorf("charge record %d: %w", i, err)
		}

		raw, ok := fields["stock"]
		if !ok {
			out = append(out, rec)
			continue
		}
		var stock int64
		if err := json.Unmarshal(raw, &stock); err != nil {
			return nil, fmt.Errorf("charge record %d: stock: %w", i, err)
		}
		if stock < 0 {
			out = append(out, rec)
			continue
		}

		fields["stock"] = zeroStock
		updated, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("charge record %d: %w", i, err)
		}
		out = append(out, updated)
	}
	return out, nil
}
