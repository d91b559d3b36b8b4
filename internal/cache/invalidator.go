package cache

// Mutation names a kind of content write.
type Mutation string

const (
	CreateGame   Mutation = "createGame"
	UpdateGame   Mutation = "updateGame"
	DeleteGame   Mutation = "deleteGame"
	CreateReview Mutation = "createReview"
	UpdateReview Mutation = "updateReview"
)

// View keys recomputed by consumers after a mutation.
const (
	HomeListing  = "home-listing"
	AdminListing = "admin-listing"
)

// DetailKey is the view key of one game's detail page.
func DetailKey(ref string) string {
	return "detail:" + ref
}

// Ref identifies the game a mutation touched. PreviousSlug is set when an
// update changed the slug.
type Ref struct {
	GameID       string
	Slug         string
	PreviousSlug string
}

// KeysFor declares which views are stale after a mutation. Game mutations
// invalidate the detail view by slug and review mutations by game id; the
// slug key is added for reviews too when it is known since detail views are
// addressed by slug.
func KeysFor(kind Mutation, ref Ref) []string {
	keys := []string{HomeListing, AdminListing}
	switch kind {
	case CreateGame, UpdateGame, DeleteGame:
		keys = appendKey(keys, ref.Slug)
		if ref.PreviousSlug != ref.Slug {
			keys = appendKey(keys, ref.PreviousSlug)
		}
	case CreateReview, UpdateReview:
		keys = appendKey(keys, ref.GameID)
		keys = appendKey(keys, ref.Slug)
	}
	return keys
}

func appendKey(keys []string, ref string) []string {
	if ref == "" {
		return keys
	}
	key := DetailKey(ref)
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}
