package ui

import (
	"reflect"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input   string
		n       int
		want    []int
		wantErr bool
	}{
		{"1,3,4", 5, []int{0, 2, 3}, false},
		{" 2 , 1 ", 3, []int{1, 0}, false},
		{"1,1,2", 3, []int{0, 1}, false}, // Duplicates collapse, first-seen order.
		{"", 3, nil, false},
		{"  ", 3, nil, false},
		{"0", 3, nil, true},
		{"4", 3, nil, true},
		{"a,b", 3, nil, true},
		{"1,,2", 3, []int{0, 1}, false},
	}
	for _, tt := range tests {
		got, err := parseSelection(tt.input, tt.n)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSelection(%q, %d) expected an error", tt.input, tt.n)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSelection(%q, %d): %v", tt.input, tt.n, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSelection(%q, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
		}
	}
}
