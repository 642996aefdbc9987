package utils

import "testing"

func TestListMessage(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "No sweets found"},
		{1, "Found 1 sweet"},
		{2, "Found 2 sweets"},
	}
	for _, tc := range cases {
		if got := ListMessage(tc.count); got != tc.want {
			t.Errorf("ListMessage(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestSearchMessage(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "No sweets found matching search criteria"},
		{1, "Found 1 sweet matching search criteria"},
		{5, "Found 5 sweets matching search criteria"},
	}
	for _, tc := range cases {
		if got := SearchMessage(tc.count); got != tc.want {
			t.Errorf("SearchMessage(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestPurchaseMessage(t *testing.T) {
	if got, want := PurchaseMessage(1, "Choco Bar"), "Successfully purchased 1 unit of Choco Bar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := PurchaseMessage(4, "Choco Bar"), "Successfully purchased 4 units of Choco Bar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRestockMessage(t *testing.T) {
	if got, want := RestockMessage(1, "Gummy Worms"), "Successfully restocked 1 unit of Gummy Worms"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := RestockMessage(10, "Gummy Worms"), "Successfully restocked 10 units of Gummy Worms"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
