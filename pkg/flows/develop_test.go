package flows

import (
	"context"
	"testing"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

func userTurn(content string) llm.Message {
	return llm.Message{Role: constant.ChatMessageRoleUser, Content: content}
}

func modelTurn(content string) llm.Message {
	return llm.Message{Role: constant.ChatMessageRoleModel, Content: content}
}

const finishedResponse = `{
	"reply": "Perfetto, ecco il tuo workspace.",
	"stage": "finalize",
	"isFinished": true,
	"payload": {"spaceName": "Progetto Blog", "icon": "pencil", "tasks": ["scrivere il primo post"], "suggestedTools": ["Notion"]}
}`

func TestDevelopIdeaFinishedRequiresConfirmation(t *testing.T) {
	tests := []struct {
		name         string
		history      []llm.Message
		wantFinished bool
	}{
		{
			name: "confirmed proposal finishes",
			history: []llm.Message{
				userTurn("voglio aprire un blog"),
				modelTurn("Ti propongo questa struttura, confermi?"),
				userTurn("sì, va bene"),
			},
			wantFinished: true,
		},
		{
			name: "no confirmation keeps it open",
			history: []llm.Message{
				userTurn("voglio aprire un blog"),
				modelTurn("Ti propongo questa struttura, confermi?"),
				userTurn("aggiungi anche una sezione ricette"),
			},
			wantFinished: false,
		},
		{
			name: "earlier confirmation does not carry forward",
			history: []llm.Message{
				userTurn("voglio aprire un blog"),
				modelTurn("Confermi questa prima bozza?"),
				userTurn("ok"),
				modelTurn("Ecco la bozza aggiornata, confermi?"),
				userTurn("cambia il nome dello spazio"),
			},
			wantFinished: false,
		},
		{
			name: "single word yes",
			history: []llm.Message{
				userTurn("voglio organizzare lo studio"),
				modelTurn("Questa struttura va bene?"),
				userTurn("ok"),
			},
			wantFinished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{response: finishedResponse}

			result, err := DevelopIdea(context.Background(), provider, tt.history)
			if err != nil {
				t.Fatalf("DevelopIdea() error = %v", err)
			}

			if result.IsFinished != tt.wantFinished {
				t.Errorf("IsFinished = %v, want %v", result.IsFinished, tt.wantFinished)
			}

			if tt.wantFinished {
				if result.Payload == nil {
					t.Fatal("finished result must carry a payload")
				}
				if result.Payload.SpaceName != "Progetto Blog" {
					t.Errorf("SpaceName = %q", result.Payload.SpaceName)
				}
			} else {
				if result.Payload != nil {
					t.Error("unfinished result must not carry a payload")
				}
				if result.Stage == StageFinalize {
					t.Error("guarded result must not remain in the finalize stage")
				}
			}
		})
	}
}

func TestDevelopIdeaEmptyHistory(t *testing.T) {
	provider := &fakeProvider{response: finishedResponse}

	if _, err := DevelopIdea(context.Background(), provider, nil); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestDevelopIdeaFinishedWithoutPayloadIsSchemaError(t *testing.T) {
	provider := &fakeProvider{response: `{"reply":"fatto","stage":"finalize","isFinished":true,"payload":null}`}
	history := []llm.Message{
		userTurn("voglio aprire un blog"),
		modelTurn("Confermi?"),
		userTurn("confermo"),
	}

	if _, err := DevelopIdea(context.Background(), provider, history); err == nil {
		t.Fatal("expected schema error for finished turn without payload")
	}
}
