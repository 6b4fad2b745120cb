// Package decksdk is the Go client for the notecards deck-sharing API.
//
// The request and response types in this package are also what the server
// writes, so they double as the wire contract.
//
// Basic usage:
//
//	client := decksdk.NewClient("https://decks.example.com", decksdk.StaticToken(accessToken))
//
//	me, err := client.Register(ctx, decksdk.RegisterRequest{DisplayName: "Ada"})
//	if err != nil {
//		return err
//	}
//
//	deck, err := client.CreateDeck(ctx, decksdk.CreateDeckRequest{Title: "Spanish verbs"})
//	if err != nil {
//		return err
//	}
//
//	res, err := client.Share(ctx, deck.ID, decksdk.ShareRequest{
//		Email: "friend@example.com",
//		Role:  decksdk.RoleEditor,
//	})
//	switch {
//	case errors.Is(err, decksdk.ErrPermissionDenied):
//		// only the owner may share
//	case err != nil:
//		return err
//	case res.Outcome == decksdk.OutcomeInvited:
//		// friend has no account yet; they get the deck when they register
//	}
//
// Errors returned by the client are *APIError values. Compare them with
// errors.Is against the exported sentinels, which match on error code.
package decksdk
