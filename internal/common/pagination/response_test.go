package pagination

import (
	"encoding/json"
	"testing"
)

func TestNewResponseEnvelope(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, 11, Params{Page: 1, PageSize: 10})

	if resp.Total != 11 || resp.Page != 1 || resp.PageSize != 10 || resp.TotalPages != 2 {
		t.Errorf("unexpected envelope: %+v", resp)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"data":["a","b"],"total":11,"page":1,"pageSize":10,"totalPages":2}`
	if string(raw) != want {
		t.Errorf("json = %s, want %s", raw, want)
	}
}
