package jsonutil

import (
	"maps"
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), "test context") {
				t.Errorf("UnmarshalWithContext() error = %v, want context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalStringMap(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    map[string]string
		wantErr string
	}{
		{
			name: "flat strings",
			data: `{"increment":"+","decrement":"-"}`,
			want: map[string]string{"increment": "+", "decrement": "-"},
		},
		{
			name:    "non-string value",
			data:    `{"title":"ok","count":3}`,
			wantErr: `locale x: key "count"`,
		},
		{
			name:    "not an object",
			data:    `[1,2]`,
			wantErr: "locale x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalStringMap([]byte(tt.data), "locale x")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("UnmarshalStringMap() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStringMap() error = %v", err)
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("UnmarshalStringMap() = %v, want %v", got, tt.want)
			}
		})
	}
}
