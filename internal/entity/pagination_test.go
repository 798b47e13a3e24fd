package entity

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{"empty", 0, 5, 0},
		{"exact fit", 10, 5, 2},
		{"partial last page", 11, 5, 3},
		{"single item", 1, 5, 1},
		{"zero page size", 10, 0, 0},
		{"negative count", -3, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.count, tc.pageSize); got != tc.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.pageSize, got, tc.want)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name      string
		count     int
		pageSize  int
		page      int
		wantStart int
		wantEnd   int
	}{
		{"first page", 11, 5, 1, 0, 5},
		{"middle page", 11, 5, 2, 5, 10},
		{"short last page", 11, 5, 3, 10, 11},
		{"page below range clamps to first", 11, 5, 0, 0, 5},
		{"page above range clamps to last", 11, 5, 9, 10, 11},
		{"no items", 0, 5, 1, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PageBounds(tc.count, tc.pageSize, tc.page)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("PageBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.count, tc.pageSize, tc.page, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestPageNumbers(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		current int
		window  int
		want    []int
	}{
		{"centered", 10, 5, 5, []int{3, 4, 5, 6, 7}},
		{"clamped at start", 10, 1, 5, []int{1, 2, 3, 4, 5}},
		{"clamped at end", 10, 10, 5, []int{6, 7, 8, 9, 10}},
		{"window wider than total", 3, 2, 5, []int{1, 2, 3}},
		{"current out of range", 10, 99, 3, []int{8, 9, 10}},
		{"no pages", 0, 1, 5, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PageNumbers(tc.total, tc.current, tc.window)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PageNumbers(%d, %d, %d) = %v, want %v", tc.total, tc.current, tc.window, got, tc.want)
			}
		})
	}
}
