package common

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1126.825030131969: 1126.83,
		93.9020858443308:  93.9,
		10.054999:         10.05,
		0:                 0,
		89.9:              89.9,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDecodeJSONRejectsTrailingContent(t *testing.T) {
	var dst map[string]any
	if err := DecodeJSON(strings.NewReader(`{"a":1}{"b":2}`), &dst); err == nil {
		t.Fatal("expected error for trailing content")
	}
	if err := DecodeJSON(strings.NewReader(`{"a":1}`), &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnvelopes(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 200, []int{1, 2})
	var ok struct {
		Success bool  `json:"success"`
		Data    []int `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ok); err != nil {
		t.Fatalf("decode success envelope: %v", err)
	}
	if !ok.Success || len(ok.Data) != 2 {
		t.Fatalf("unexpected envelope %+v", ok)
	}

	rec = httptest.NewRecorder()
	Error(rec, 400, "nope")
	var fail struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fail); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if fail.Success || fail.Message != "nope" {
		t.Fatalf("unexpected envelope %+v", fail)
	}
}
