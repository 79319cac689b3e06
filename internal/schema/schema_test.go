package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var required = []string{"id", "username"}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    any
		wantErr bool
	}{
		{name: "object", body: `{"id":1,"username":"a"}`, want: map[string]any{"id": json.Number("1"), "username": "a"}},
		{name: "array", body: `[{"id":2}]`, want: []any{map[string]any{"id": json.Number("2")}}},
		{name: "scalar", body: `7`, want: json.Number("7")},
		{name: "surrounding whitespace", body: "  {}\n", want: map[string]any{}},
		{name: "empty", body: "", wantErr: true},
		{name: "whitespace only", body: "   ", wantErr: true},
		{name: "malformed", body: `{"id":1,`, wantErr: true},
		{name: "trailing garbage", body: `{"id":1} x`, wantErr: true},
		{name: "two documents", body: `{} {}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSingle(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    bool
	}{
		{name: "all keys", payload: map[string]any{"id": 1, "username": "a"}, want: true},
		{name: "extra keys", payload: map[string]any{"id": 1, "username": "a", "x": true}, want: true},
		{name: "null values count as present", payload: map[string]any{"id": nil, "username": nil}, want: true},
		{name: "missing key", payload: map[string]any{"id": 1}, want: false},
		{name: "array", payload: []any{map[string]any{"id": 1, "username": "a"}}, want: false},
		{name: "number", payload: json.Number("3"), want: false},
		{name: "string", payload: "id", want: false},
		{name: "nil", payload: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSingle(tt.payload, required))
		})
	}
}

func TestValidateSingle_DoesNotMutate(t *testing.T) {
	payload := map[string]any{"id": 1}
	ValidateSingle(payload, required)
	assert.Equal(t, map[string]any{"id": 1}, payload)
}

func TestValidateBatch(t *testing.T) {
	valid := map[string]any{"id": 1, "username": "a"}
	tests := []struct {
		name    string
		payload any
		want    bool
	}{
		{name: "all valid", payload: []any{valid, valid}, want: true},
		{name: "empty array", payload: []any{}, want: true},
		{name: "one invalid", payload: []any{valid, map[string]any{"id": 2}}, want: false},
		{name: "non object element", payload: []any{valid, "x"}, want: false},
		{name: "object instead of array", payload: valid, want: false},
		{name: "nil", payload: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBatch(tt.payload, required))
		})
	}
}
