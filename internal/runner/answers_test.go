package runner

import (
	"reflect"
	"testing"
)

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		want     []int
		wantErr  bool
	}{
		{"empty", "", 3, nil, false},
		{"simple", "2,1,4", 3, []int{1, 0, 3}, false},
		{"spaces and blanks", " 2 , ,3,", 5, []int{1, 2}, false},
		{"fewer than questions", "1", 3, []int{0}, false},
		{"not a number", "1,x", 3, nil, true},
		{"negative", "-1", 3, nil, true},
		{"zero", "0", 3, nil, true},
		{"too many", "1,2,3,4", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswers(tt.raw, tt.expected)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnswers(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAnswers(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
