package cards

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Card mirrors one entry of the "cards" array. Only CardID is required on the
// wire; the remaining fields depend on the card type.
type Card struct {
	CardID   int    `json:"card_id" yaml:"card_id"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	AudioURL string `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	VideoID  string `json:"video_id,omitempty" yaml:"video_id,omitempty"`
}

var (
	errMissingCardID = errors.New(`missing required key "card_id"`)
	errMissingCards  = errors.New(`missing required key "cards"`)
)

// UnmarshalJSON decodes a card and enforces the required card_id key. Keys
// match exactly; encoding/json alone would accept "CARD_ID". audio_url is
// never read, so AudioURL stays empty for fetched cards.
func (c *Card) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	id, err := field[int](fields, "card_id")
	if err != nil {
		return err
	}
	if id == nil {
		return errMissingCardID
	}
	out := Card{CardID: *id}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"type", &out.Type},
		{"title", &out.Title},
		{"label", &out.Label},
		{"text", &out.Text},
		{"video_id", &out.VideoID},
	} {
		v, err := field[string](fields, f.key)
		if err != nil {
			return err
		}
		if v != nil {
			*f.dst = *v
		}
	}
	*c = out
	return nil
}

// field decodes fields[key] when present. Absent keys and null values both
// yield nil.
func field[T any](fields map[string]json.RawMessage, key string) (*T, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// HasAudio reports whether the card carries an audio URL.
func (c Card) HasAudio() bool {
	return c.AudioURL != ""
}

// HasVideo reports whether the card references a video.
func (c Card) HasVideo() bool {
	return c.VideoID != ""
}

// Collection is the envelope returned by the cards endpoint.
type Collection struct {
	CardItems []Card `json:"cards"`
}

// UnmarshalJSON decodes the envelope. A missing or null "cards" key fails;
// keys match exactly.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	items, err := field[[]Card](fields, "cards")
	if err != nil {
		return err
	}
	if items == nil {
		return errMissingCards
	}
	c.CardItems = *items
	return nil
}

// DecodeCollection parses an envelope payload and returns its cards in wire
// order.
func DecodeCollection(data []byte) ([]Card, error) {
	var coll Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return coll.CardItems, nil
}

// Example1 returns the audio sample card used by previews and tests.
func Example1() Card {
	return Card{
		CardID:   5,
		Type:     "audio",
		AudioURL: "https://v1.cdnpk.net/videvo_files/audio/premium/audio0108/watermarked/HUMAN-WHISTLE_GEN-HDF-15500_preview.mp3",
		Title:    "Halloween is around the corner. Here are few things to get ahead of",
		Label:    "get ahead",
	}
}

// Example2 returns the text sample card used by previews and tests.
func Example2() Card {
	return Card{
		CardID:   4,
		Type:     "opt_text",
		AudioURL: "https://v1.cdnpk.net/videvo_files/audio/premium/audio0108/watermarked/HUMAN-WHISTLE_GEN-HDF-15500_preview.mp3",
		Title:    "A Mantra when nothing is working to clam your child",
		Text:     "Lorem ipsum description Lorem ipsum description Lorem ipsum description Lorem ipsum description Lorem ipsum description",
	}
}

// Examples returns both sample cards in display order.
func Examples() []Card {
	return []Card{Example1(), Example2()}
}
