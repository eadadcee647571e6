package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyJSON(t *testing.T) {
	var w struct {
		Price Money `json:"price"`
	}
	for _, in := range []string{`{"price":"10.50"}`, `{"price":10.5}`, `{"price":"10.5"}`} {
		if err := json.Unmarshal([]byte(in), &w); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if w.Price != 1050 {
			t.Fatalf("%s: got %d cents", in, w.Price)
		}
	}

	if err := json.Unmarshal([]byte(`{"price":"10.505"}`), &w); err == nil {
		t.Fatalf("expected error for 3 fraction digits")
	}

	out, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{Price: 5250})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"price":"52.50"}` {
		t.Fatalf("unexpected json %s", out)
	}
}
