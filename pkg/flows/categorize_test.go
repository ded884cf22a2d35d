package flows

import (
	"context"
	"errors"
	"testing"
)

func TestCategorizeEmptyCandidatesFailsLoudly(t *testing.T) {
	provider := &fakeProvider{response: `{"spaceId":"x"}`}

	_, err := Categorize(context.Background(), provider, "https://example.com", nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
	if provider.called {
		t.Error("provider must not be called without candidates")
	}
}

func TestCategorizeRejectsInventedId(t *testing.T) {
	provider := &fakeProvider{response: `{"spaceId":"invented"}`}
	candidates := []SpaceCandidate{
		{Id: "a", Name: "Dev"},
		{Id: "b", Name: "Cucina", Category: "hobby"},
	}

	if _, err := Categorize(context.Background(), provider, "https://go.dev", candidates); err == nil {
		t.Fatal("expected error for id outside the candidate list")
	}
}

func TestCategorizePicksCandidate(t *testing.T) {
	provider := &fakeProvider{response: "the answer is:\n```json\n{\"spaceId\":\"b\"}\n```"}
	candidates := []SpaceCandidate{
		{Id: "a", Name: "Dev"},
		{Id: "b", Name: "Cucina"},
	}

	got, err := Categorize(context.Background(), provider, "https://giallozafferano.it", candidates)
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}
	if got != "b" {
		t.Errorf("spaceId = %q, want %q", got, "b")
	}
}
