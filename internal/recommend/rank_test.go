package recommend

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	items := []scoredItem{
		{key: "b", score: 4.0},
		{key: "a", score: 5.0},
		{key: "c", score: 4.0},
		{key: "d", score: 1.0},
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"full order with ties", 10, []string{"a", "b", "c", "d"}},
		{"truncated", 2, []string{"a", "b"}},
		{"exact", 4, []string{"a", "b", "c", "d"}},
		{"zero n", 0, nil},
		{"negative n", -5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]scoredItem, len(items))
			copy(in, items)
			got := rank(in, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rank(n=%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRankTieBreakIsAlphabetical(t *testing.T) {
	items := []scoredItem{
		{key: "zebra", score: 3.0},
		{key: "apple", score: 3.0},
		{key: "mango", score: 3.0},
	}
	got := rank(items, 3)
	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rank() = %v, want %v", got, want)
	}
}

func TestRankEmptyInput(t *testing.T) {
	if got := rank(nil, 5); len(got) != 0 {
		t.Fatalf("rank(nil) = %v, want empty", got)
	}
}
