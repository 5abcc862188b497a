package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"defaults", Params{}, 1, DefaultLimit},
		{"negative page", Params{Page: -3, Limit: 20}, 1, 20},
		{"limit capped", Params{Page: 2, Limit: 500}, 2, MaxLimit},
		{"passthrough", Params{Page: 4, Limit: 50}, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d", got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("page 1 offset = %d, want 0", got)
	}
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("page 3 offset = %d, want 20", got)
	}
}

func TestPageCount(t *testing.T) {
	if got := PageCount(25, 10); got != 3 {
		t.Fatalf("PageCount(25,10) = %d, want 3", got)
	}
	if got := PageCount(30, 10); got != 3 {
		t.Fatalf("PageCount(30,10) = %d, want 3", got)
	}
	if got := PageCount(0, 10); got != 0 {
		t.Fatalf("PageCount(0,10) = %d, want 0", got)
	}
	if got := PageCount(1, 10); got != 1 {
		t.Fatalf("PageCount(1,10) = %d, want 1", got)
	}
}
