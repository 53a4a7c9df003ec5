package controllers

import "testing"

func TestPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{25, 12, 3},
	}

	for _, c := range cases {
		if got := pageCount(c.total, c.pageSize); got != c.want {
			t.Errorf("pageCount(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}
