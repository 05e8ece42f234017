package upstream

import "testing"

type item struct {
	Code string `json:"code"`
}

func TestListDecodesArrayEnvelopeAndNull(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantItems int
		wantTotal int
	}{
		{name: "null", raw: "null", wantItems: 0, wantTotal: 0},
		{name: "bare array", raw: `[{"code":"A"},{"code":"B"}]`, wantItems: 2, wantTotal: 2},
		{name: "envelope with total", raw: `{"data":[{"code":"A"}],"total":40}`, wantItems: 1, wantTotal: 40},
		{name: "envelope without total", raw: `{"data":[{"code":"A"},{"code":"B"}]}`, wantItems: 2, wantTotal: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var l List[item]
			if err := l.UnmarshalJSON([]byte(tc.raw)); err != nil {
				t.Fatalf("UnmarshalJSON error: %v", err)
			}
			if len(l.Items) != tc.wantItems || l.Total != tc.wantTotal {
				t.Fatalf("got items=%d total=%d, want items=%d total=%d", len(l.Items), l.Total, tc.wantItems, tc.wantTotal)
			}
		})
	}
}

func TestListRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	var l List[item]
	if err := l.UnmarshalJSON([]byte(`{"data":`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
