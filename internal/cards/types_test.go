package cards

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeCollection_SingleCardRoundTrip(t *testing.T) {
	got, err := DecodeCollection([]byte(`{"cards":[{"card_id":1,"title":"t"}]}`))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	want := []Card{{CardID: 1, Title: "t"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeCollection mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCollection_PreservesWireOrder(t *testing.T) {
	payload := `{"cards":[
		{"card_id":9,"type":"video","video_id":"abc"},
		{"card_id":2,"type":"opt_text","text":"body","label":"l"},
		{"card_id":7}
	]}`
	got, err := DecodeCollection([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	ids := make([]int, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.CardID)
	}
	if diff := cmp.Diff([]int{9, 2, 7}, ids); diff != "" {
		t.Fatalf("card order mismatch (-want +got):\n%s", diff)
	}
	if got[0].VideoID != "abc" || got[1].Label != "l" || got[1].Text != "body" {
		t.Fatalf("optional fields not decoded: %#v", got)
	}
}

func TestDecodeCollection_IgnoresAudioURL(t *testing.T) {
	got, err := DecodeCollection([]byte(`{"cards":[{"card_id":3,"type":"audio","audio_url":"https://a/b.mp3"}]}`))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	if got[0].AudioURL != "" {
		t.Fatalf("AudioURL = %q, want empty (audio_url is not decoded)", got[0].AudioURL)
	}
	if got[0].HasAudio() {
		t.Fatalf("HasAudio() = true, want false")
	}
}

func TestDecodeCollection_NullOptionalFieldsAreAbsent(t *testing.T) {
	got, err := DecodeCollection([]byte(`{"cards":[{"card_id":1,"title":null,"label":null}]}`))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	if diff := cmp.Diff([]Card{{CardID: 1}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCollection_EmptyArray(t *testing.T) {
	got, err := DecodeCollection([]byte(`{"cards":[]}`))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestDecodeCollection_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"not json", `{not-json`, "invalid character"},
		{"missing card_id", `{"cards":[{"card_id":1},{"title":"x"}]}`, "card_id"},
		{"string card_id", `{"cards":[{"card_id":"1"}]}`, "card_id"},
		{"fractional card_id", `{"cards":[{"card_id":1.5}]}`, "card_id"},
		{"missing cards key", `{"items":[]}`, `"cards"`},
		{"null cards", `{"cards":null}`, `"cards"`},
		{"wrong optional type", `{"cards":[{"card_id":1,"title":5}]}`, "title"},
		{"empty body", ``, "unexpected end"},
		{"upper-case keys", `{"CARDS":[{"CARD_ID":7,"Title":"x"}]}`, `"cards"`},
		{"upper-case card_id", `{"cards":[{"CARD_ID":7}]}`, "card_id"},
		{"top-level array", `[{"card_id":1}]`, "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCollection([]byte(tt.payload))
			if err == nil {
				t.Fatalf("DecodeCollection returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestDecodeCollection_OptionalKeysMatchExactly(t *testing.T) {
	got, err := DecodeCollection([]byte(`{"cards":[{"card_id":3,"Title":"x","TYPE":"audio"}]}`))
	if err != nil {
		t.Fatalf("DecodeCollection returned error: %v", err)
	}
	if diff := cmp.Diff([]Card{{CardID: 3}}, got); diff != "" {
		t.Fatalf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestCard_EncodeIncludesAudioURL(t *testing.T) {
	data, err := json.Marshal(Example1())
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), `"audio_url":"https://`) {
		t.Fatalf("encoded card = %s, want audio_url", data)
	}
	if strings.Contains(string(data), `"video_id"`) {
		t.Fatalf("encoded card = %s, want empty video_id omitted", data)
	}
}

func TestExamples(t *testing.T) {
	ex := Examples()
	if len(ex) != 2 || ex[0].CardID != 5 || ex[1].CardID != 4 {
		t.Fatalf("Examples = %#v, want ids 5 and 4", ex)
	}
	if !ex[0].HasAudio() || ex[0].HasVideo() {
		t.Fatalf("Example1 media flags wrong: %#v", ex[0])
	}
}
