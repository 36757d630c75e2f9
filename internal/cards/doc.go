// Package cards provides the card model and the HTTP client for the cards
// endpoint.
//
// # Overview
//
// The endpoint returns a single JSON envelope:
//
//	{"cards": [{"card_id": 5, "type": "audio", "title": "..."}, ...]}
//
// Each card requires an integer card_id. Every other field is optional because
// different card types populate different subsets of fields.
//
// # Architecture
//
//   - types.go: Card and Collection with their decoders, plus sample cards
//   - errors.go: the Error taxonomy returned by every fetch
//   - client.go: Fetcher interface, HTTP Client, MockFetcher, FetchAsync
//
// # Client Usage
//
//	client := cards.NewClient(cards.WithTimeout(30 * time.Second))
//	items, err := client.FetchCards(ctx, "https://example.com/api/p/cards")
//	if err != nil {
//		fmt.Println(cards.AsError(err).Message())
//	}
//
// # Request Handling
//
// FetchCards:
//   - Rejects an empty or non-http(s) URL with KindBadURL before any I/O
//   - Issues exactly one GET with no extra headers and no retries
//   - Maps any status outside 200-299 to KindBadResponse without reading the body
//   - Decodes 2xx bodies, mapping decoder failures to KindParse
//
// # Error Handling
//
// Every failure is a *Error with one of five kinds. Two strings are derived
// from it:
//
//   - Message(): short text for the user ("Sorry, something went wrong.")
//   - Error(): diagnostic text with the status code or decoder detail
//
// The HTTP status code is intentionally never part of Message().
//
// # Known Deviation
//
// Card.AudioURL exists in the model and is written when encoding, but the
// decoder does not read audio_url from the wire. Fetched cards therefore never
// carry an audio URL. This matches the behaviour consumers were built against.
//
// # Testing Considerations
//
// Use MockFetcher to return canned cards or errors, and httptest.Server to
// exercise the real Client.
package cards
