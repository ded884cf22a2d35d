package flows

import (
	"context"
	"testing"
)

func TestSmartSearchEmptyListSkipsModel(t *testing.T) {
	provider := &fakeProvider{response: `{"ids":["x"]}`}

	ids, err := SmartSearch(context.Background(), provider, "qualsiasi cosa", nil)
	if err != nil {
		t.Fatalf("SmartSearch() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
	if provider.called {
		t.Error("provider must not be called for an empty bookmark list")
	}
}

func TestSmartSearchFiltersUnknownIds(t *testing.T) {
	bookmarks := []BookmarkRef{
		{Id: "a", Title: "Go blog", Url: "https://go.dev/blog"},
		{Id: "b", Title: "Ricette", Url: "https://example.com/ricette"},
	}
	provider := &fakeProvider{response: `{"ids":["b","ghost","a","b"]}`}

	ids, err := SmartSearch(context.Background(), provider, "programmazione", bookmarks)
	if err != nil {
		t.Fatalf("SmartSearch() error = %v", err)
	}

	want := []string{"b", "a"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestSmartSearchEmptyModelResultIsValid(t *testing.T) {
	bookmarks := []BookmarkRef{{Id: "a", Title: "Go blog", Url: "https://go.dev/blog"}}
	provider := &fakeProvider{response: `{"ids":[]}`}

	ids, err := SmartSearch(context.Background(), provider, "astronomia", bookmarks)
	if err != nil {
		t.Fatalf("SmartSearch() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}
