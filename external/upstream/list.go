package upstream

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
)

// List decodes either a bare JSON array or a {"data": [...], "total": n}
// envelope; the feed uses both.
type List[T any] struct {
	Items []T
	Total int
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		if err := sonic.Unmarshal(trimmed, &l.Items); err != nil {
			return err
		}
		l.Total = len(l.Items)
		return nil
	}

	var envelope struct {
		Data  []T `json:"data"`
		Total int `json:"total"`
	}
	if err := sonic.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	l.Items = envelope.Data
	l.Total = envelope.Total
	if l.Total == 0 {
		l.Total = len(l.Items)
	}
	return nil
}
