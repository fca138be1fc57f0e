package store

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/raqamhq/raqam/internal/kv"
	"github.com/raqamhq/raqam/internal/models"
)

func newTestStore(t *testing.T) (*LocalStore, kv.Store) {
	t.Helper()
	fs, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return New(fs, slog.New(slog.DiscardHandler)), fs
}

func TestInitializeSeedsSampleData(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)

	ls.Initialize(ctx)

	listings := ls.ListListings(ctx)
	if len(listings) != 5 {
		t.Fatalf("ListListings after seed = %d listings, want 5", len(listings))
	}
	for _, listing := range listings {
		if listing.IsFavorite {
			t.Errorf("seeded listing %q marked favorite", listing.ID)
		}
	}

	categories := map[models.ListingCategory]int{}
	for _, listing := range listings {
		categories[listing.Category]++
	}
	if categories[models.CategoryCarPlate] == 0 || categories[models.CategoryMobileNumber] == 0 {
		t.Errorf("seed is missing a category: %v", categories)
	}

	user, err := ls.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser after seed: %v", err)
	}
	if user.ID != DefaultUserID {
		t.Errorf("seeded user ID = %q, want %q", user.ID, DefaultUserID)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	ls.Initialize(ctx)
	first, _, err := kvStore.Get(ctx, ListingsKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	firstUser, _, err := kvStore.Get(ctx, UserKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	ls.Initialize(ctx)
	second, _, err := kvStore.Get(ctx, ListingsKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	secondUser, _, err := kvStore.Get(ctx, UserKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if first != second {
		t.Error("second Initialize rewrote the listings collection")
	}
	if firstUser != secondUser {
		t.Error("second Initialize rewrote the user record")
	}
}

func TestInitializeDoesNotReseedEmptyCollection(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	// Present-but-empty counts as existing: seeding keys off key
	// presence, not collection length.
	if err := kvStore.Set(ctx, ListingsKey, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ls.Initialize(ctx)

	if listings := ls.ListListings(ctx); len(listings) != 0 {
		t.Errorf("Initialize reseeded over an empty collection: %d listings", len(listings))
	}
}

func TestCreateListingRoundTrip(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	input := models.CreateListingInput{
		Category:    models.CategoryMobileNumber,
		Number:      "055 777 8899",
		Price:       9000,
		Description: "",
		Location:    "jeddah",
	}

	created, err := ls.CreateListing(ctx, input)
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if created.ID == "" {
		t.Error("created listing has empty id")
	}
	if since := time.Since(created.CreatedAt); since < 0 || since > time.Second {
		t.Errorf("created listing timestamp off by %v", since)
	}
	if created.SellerID != DefaultUserID {
		t.Errorf("created listing seller = %q, want seeded user id", created.SellerID)
	}

	listings := ls.ListListings(ctx)
	if len(listings) != 6 {
		t.Fatalf("ListListings after create = %d listings, want 6", len(listings))
	}
	if listings[0].ID != created.ID {
		t.Errorf("new listing is not first: got %q", listings[0].ID)
	}

	got, err := ls.GetListing(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetListing: %v", err)
	}
	if got.Category != input.Category || got.Number != input.Number ||
		got.Price != input.Price || got.Location != input.Location {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("round trip timestamp = %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestCreateListingWithoutUserFallsBackToPlaceholder(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)

	created, err := ls.CreateListing(ctx, models.CreateListingInput{
		Category: models.CategoryCarPlate,
		Number:   "D 9999",
		Price:    1000,
		Location: "riyadh",
	})
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if created.SellerID != DefaultUserID {
		t.Errorf("fallback seller id = %q, want %q", created.SellerID, DefaultUserID)
	}
	if created.SellerName == "" {
		t.Error("fallback seller name is empty")
	}
}

func TestDeleteListingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	if err := ls.DeleteListing(ctx, "3"); err != nil {
		t.Fatalf("DeleteListing: %v", err)
	}
	if len(ls.ListListings(ctx)) != 4 {
		t.Fatal("listing was not removed")
	}

	// Deleting the same id again is a no-op, not an error
	if err := ls.DeleteListing(ctx, "3"); err != nil {
		t.Fatalf("second DeleteListing: %v", err)
	}
	if len(ls.ListListings(ctx)) != 4 {
		t.Error("second delete changed the collection")
	}

	if _, err := ls.GetListing(ctx, "3"); err != ErrListingNotFound {
		t.Errorf("GetListing after delete = %v, want ErrListingNotFound", err)
	}
}

func TestToggleFavoriteIsAnInvolution(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	if got := ls.ToggleFavorite(ctx, "2"); !got {
		t.Error("first toggle = false, want true")
	}

	favorites := ls.GetFavorites(ctx)
	if len(favorites) != 1 || favorites[0] != "2" {
		t.Errorf("GetFavorites = %v, want [2]", favorites)
	}

	listing, err := ls.GetListing(ctx, "2")
	if err != nil {
		t.Fatalf("GetListing: %v", err)
	}
	if !listing.IsFavorite {
		t.Error("listing 2 not marked favorite in enriched view")
	}

	if got := ls.ToggleFavorite(ctx, "2"); got {
		t.Error("second toggle = true, want false")
	}
	if favorites := ls.GetFavorites(ctx); len(favorites) != 0 {
		t.Errorf("favorites not restored after involution: %v", favorites)
	}
}

func TestToggleFavoritePreservesOrder(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	ls.ToggleFavorite(ctx, "4")
	ls.ToggleFavorite(ctx, "1")
	ls.ToggleFavorite(ctx, "5")
	ls.ToggleFavorite(ctx, "1")

	favorites := ls.GetFavorites(ctx)
	if len(favorites) != 2 || favorites[0] != "4" || favorites[1] != "5" {
		t.Errorf("GetFavorites = %v, want [4 5]", favorites)
	}
}

func TestUpdateUserShallowMerge(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	bio := "بائع أرقام"
	updated, err := ls.UpdateUser(ctx, models.UserUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("updated bio = %q, want %q", updated.Bio, bio)
	}
	if updated.Name == "" || updated.Phone == "" {
		t.Errorf("update clobbered untouched fields: %+v", updated)
	}

	got, err := ls.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if *got != *updated {
		t.Errorf("persisted user %+v != returned user %+v", got, updated)
	}
}

func TestUpdateUserNeverCreates(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)

	name := "someone"
	if _, err := ls.UpdateUser(ctx, models.UserUpdate{Name: &name}); err != ErrUserNotFound {
		t.Fatalf("UpdateUser without record = %v, want ErrUserNotFound", err)
	}
	if _, err := ls.GetUser(ctx); err != ErrUserNotFound {
		t.Error("update created a user from nothing")
	}
}

func TestGetMyListings(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	// The seed sellers are distinct from the current user
	if mine := ls.GetMyListings(ctx); len(mine) != 0 {
		t.Fatalf("GetMyListings on fresh seed = %d listings, want 0", len(mine))
	}

	created, err := ls.CreateListing(ctx, models.CreateListingInput{
		Category: models.CategoryCarPlate,
		Number:   "C 1111",
		Price:    30000,
		Location: "dammam",
	})
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}

	mine := ls.GetMyListings(ctx)
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Errorf("GetMyListings = %+v, want just the created listing", mine)
	}
}

func TestGetMyListingsWithoutUser(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)
	ls.Initialize(ctx)
	if err := kvStore.MultiRemove(ctx, []string{UserKey}); err != nil {
		t.Fatalf("MultiRemove: %v", err)
	}

	if mine := ls.GetMyListings(ctx); len(mine) != 0 {
		t.Errorf("GetMyListings without user = %d listings, want 0", len(mine))
	}
}

func TestSearchListings(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	if results := ls.SearchListings(ctx, ""); len(results) != 5 {
		t.Errorf("empty query returned %d listings, want all 5", len(results))
	}
	if results := ls.SearchListings(ctx, "0555"); len(results) != 1 || results[0].ID != "2" {
		t.Errorf("SearchListings(0555) = %+v, want listing 2", results)
	}
	if results := ls.SearchListings(ctx, "جدة"); len(results) != 1 || results[0].ID != "2" {
		t.Errorf("SearchListings(جدة) = %+v, want listing 2", results)
	}
	if results := ls.SearchListings(ctx, "no-such-number"); len(results) != 0 {
		t.Errorf("SearchListings(no match) = %d listings, want 0", len(results))
	}
}

func TestListListingsByCategory(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	if results := ls.ListListingsByCategory(ctx, "car_plate"); len(results) != 3 {
		t.Errorf("car_plate filter = %d listings, want 3", len(results))
	}
	if results := ls.ListListingsByCategory(ctx, "mobile_number"); len(results) != 2 {
		t.Errorf("mobile_number filter = %d listings, want 2", len(results))
	}
	if results := ls.ListListingsByCategory(ctx, "all"); len(results) != 5 {
		t.Errorf("all filter = %d listings, want 5", len(results))
	}
}

func TestCorruptDataTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	if err := kvStore.Set(ctx, ListingsKey, "{definitely not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kvStore.Set(ctx, FavoritesKey, "also garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kvStore.Set(ctx, UserKey, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if listings := ls.ListListings(ctx); len(listings) != 0 {
		t.Errorf("corrupt listings yielded %d entries, want 0", len(listings))
	}
	if favorites := ls.GetFavorites(ctx); len(favorites) != 0 {
		t.Errorf("corrupt favorites yielded %v, want empty", favorites)
	}
	if _, err := ls.GetUser(ctx); err != ErrUserNotFound {
		t.Errorf("corrupt user = %v, want ErrUserNotFound", err)
	}
}

func TestThemePreference(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	if _, err := ls.GetThemePreference(ctx); err != ErrThemeNotSet {
		t.Errorf("GetThemePreference unset = %v, want ErrThemeNotSet", err)
	}

	if err := ls.SetThemePreference(ctx, models.ThemeDark); err != nil {
		t.Fatalf("SetThemePreference: %v", err)
	}
	theme, err := ls.GetThemePreference(ctx)
	if err != nil {
		t.Fatalf("GetThemePreference: %v", err)
	}
	if theme != models.ThemeDark {
		t.Errorf("GetThemePreference = %q, want dark", theme)
	}

	// An unrecognized stored value reads back as unset
	if err := kvStore.Set(ctx, ThemeKey, "sepia"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := ls.GetThemePreference(ctx); err != ErrThemeNotSet {
		t.Errorf("GetThemePreference with garbage = %v, want ErrThemeNotSet", err)
	}
}

func TestAppPreferencesNormalizeLegacyValues(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	// Values written by an earlier app version as human-readable labels
	if err := kvStore.Set(ctx, LanguageKey, "English"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kvStore.Set(ctx, CurrencyKey, "درهم إماراتي"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kvStore.Set(ctx, LocationKey, "totally unknown"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	prefs := ls.GetAppPreferences(ctx)
	if prefs.Language != models.LanguageEnglish {
		t.Errorf("language = %q, want en", prefs.Language)
	}
	if prefs.Currency != models.CurrencyAED {
		t.Errorf("currency = %q, want aed", prefs.Currency)
	}
	if prefs.Location != models.DefaultLocation {
		t.Errorf("location = %q, want default", prefs.Location)
	}
}

func TestSetAppPreferenceWritesCanonicalToken(t *testing.T) {
	ctx := context.Background()
	ls, kvStore := newTestStore(t)

	if err := ls.SetAppPreference(ctx, models.PreferenceCurrency, "usd"); err != nil {
		t.Fatalf("SetAppPreference: %v", err)
	}

	raw, found, err := kvStore.Get(ctx, CurrencyKey)
	if err != nil || !found {
		t.Fatalf("Get currency key: found=%v err=%v", found, err)
	}
	if raw != "usd" {
		t.Errorf("stored currency = %q, want the canonical token", raw)
	}

	if err := ls.SetAppPreference(ctx, "timezone", "utc"); err == nil {
		t.Error("unknown preference key accepted")
	}
}

func TestClearAllRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestStore(t)
	ls.Initialize(ctx)

	ls.ToggleFavorite(ctx, "1")
	if err := ls.SetAppPreference(ctx, models.PreferenceLanguage, "en"); err != nil {
		t.Fatalf("SetAppPreference: %v", err)
	}
	if err := ls.SetThemePreference(ctx, models.ThemeLight); err != nil {
		t.Fatalf("SetThemePreference: %v", err)
	}

	if err := ls.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	if listings := ls.ListListings(ctx); len(listings) != 0 {
		t.Errorf("listings survived ClearAll: %d", len(listings))
	}
	if _, err := ls.GetUser(ctx); err != ErrUserNotFound {
		t.Error("user survived ClearAll")
	}
	if favorites := ls.GetFavorites(ctx); len(favorites) != 0 {
		t.Error("favorites survived ClearAll")
	}
	if _, err := ls.GetThemePreference(ctx); err != ErrThemeNotSet {
		t.Error("theme survived ClearAll")
	}

	prefs := ls.GetAppPreferences(ctx)
	if prefs != models.DefaultPreferences() {
		t.Errorf("preferences after ClearAll = %+v, want hard-coded defaults", prefs)
	}
}
