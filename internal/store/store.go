// Package store owns all persisted application state: listings, the
// current user, the favorites set, and the theme/locale preferences.
// Every read and write funnels through the kv.Store it wraps; there is
// no in-memory cache, persistent storage is the source of truth.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raqamhq/raqam/internal/kv"
	"github.com/raqamhq/raqam/internal/models"
)

const (
	ListingsKey  = "raqam_listings"
	UserKey      = "raqam_user"
	FavoritesKey = "raqam_favorites"
	ThemeKey     = "raqam_theme_preference"
	LanguageKey  = "raqam_language"
	CurrencyKey  = "raqam_currency"
	LocationKey  = "raqam_default_location"
)

// DefaultUserID identifies the singleton user record and doubles as
// the placeholder seller identity when no user record exists.
const DefaultUserID = "current_user"

const fallbackSellerName = "مستخدم"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrThemeNotSet     = errors.New("theme preference not set")
)

// ownedKeys is every key this layer persists; ClearAll removes all of
// them in one operation.
var ownedKeys = []string{
	ListingsKey,
	UserKey,
	FavoritesKey,
	ThemeKey,
	LanguageKey,
	CurrencyKey,
	LocationKey,
}

// LocalStore reads and writes JSON-encoded collections under fixed
// keys. Storage failures and corrupt values are logged and degraded to
// safe defaults; nothing in this layer is fatal to the caller.
//
// Writes are small and user-paced, but the server can see concurrent
// requests, so mutating read-modify-write sequences are serialized
// behind mu. Reads are single gets and stay lock-free.
type LocalStore struct {
	kv     kv.Store
	logger *slog.Logger
	mu     sync.Mutex
}

func New(kvStore kv.Store, logger *slog.Logger) *LocalStore {
	return &LocalStore{
		kv:     kvStore,
		logger: logger,
	}
}

// Initialize seeds the sample listings and the default user on first
// run. It is idempotent: a collection is seeded only while its key is
// absent, and an existing key is never overwritten even when it holds
// an empty list. Failures are logged and swallowed so the app can
// continue with empty state.
func (ls *LocalStore) Initialize(ctx context.Context) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	_, found, err := ls.kv.Get(ctx, ListingsKey)
	if err != nil {
		ls.logger.Error("Failed to check listings key", "error", err)
	} else if !found {
		if err := ls.writeJSON(ctx, ListingsKey, sampleListings(time.Now())); err != nil {
			ls.logger.Error("Failed to seed listings", "error", err)
		}
	}

	_, found, err = ls.kv.Get(ctx, UserKey)
	if err != nil {
		ls.logger.Error("Failed to check user key", "error", err)
	} else if !found {
		if err := ls.writeJSON(ctx, UserKey, defaultUser()); err != nil {
			ls.logger.Error("Failed to seed user", "error", err)
		}
	}
}

// ListListings returns all listings with IsFavorite derived from the
// favorites set. Missing or corrupt data yields an empty slice, never
// an error.
func (ls *LocalStore) ListListings(ctx context.Context) []models.Listing {
	listings := ls.readListings(ctx)
	favorites := ls.readFavorites(ctx)

	favored := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		favored[id] = true
	}

	for i := range listings {
		listings[i].IsFavorite = favored[listings[i].ID]
	}
	return listings
}

// GetListing looks up one listing in the favorite-enriched view.
func (ls *LocalStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	for _, listing := range ls.ListListings(ctx) {
		if listing.ID == id {
			return &listing, nil
		}
	}
	return nil, ErrListingNotFound
}

// CreateListing builds a new listing with a fresh id, the current
// timestamp, and the seller identity of the current user, then
// prepends it to the collection so newest-first ordering holds by
// insertion order alone.
func (ls *LocalStore) CreateListing(ctx context.Context, input models.CreateListingInput) (*models.Listing, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	sellerID := DefaultUserID
	sellerName := fallbackSellerName
	if user := ls.readUser(ctx); user != nil {
		sellerID = user.ID
		sellerName = user.Name
	}

	listing := models.Listing{
		ID:          uuid.NewString(),
		Category:    input.Category,
		Number:      input.Number,
		Price:       input.Price,
		Description: input.Description,
		Location:    input.Location,
		SellerID:    sellerID,
		SellerName:  sellerName,
		CreatedAt:   time.Now().UTC(),
	}

	listings := append([]models.Listing{listing}, ls.readListings(ctx)...)
	if err := ls.writeJSON(ctx, ListingsKey, listings); err != nil {
		ls.logger.Error("Failed to persist new listing", "error", err)
		return nil, err
	}
	return &listing, nil
}

// DeleteListing removes the listing with the given id. An unknown id
// is a no-op, which makes deletion idempotent.
func (ls *LocalStore) DeleteListing(ctx context.Context, id string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	listings := ls.readListings(ctx)
	filtered := listings[:0]
	for _, listing := range listings {
		if listing.ID != id {
			filtered = append(filtered, listing)
		}
	}

	if err := ls.writeJSON(ctx, ListingsKey, filtered); err != nil {
		ls.logger.Error("Failed to persist listings after delete", "error", err)
		return err
	}
	return nil
}

// GetUser returns the stored user record or ErrUserNotFound.
func (ls *LocalStore) GetUser(ctx context.Context) (*models.User, error) {
	user := ls.readUser(ctx)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser shallow-merges the provided fields over the existing
// record. Updating a nonexistent user is a no-op returning
// ErrUserNotFound; update never creates a user from nothing.
func (ls *LocalStore) UpdateUser(ctx context.Context, update models.UserUpdate) (*models.User, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	user := ls.readUser(ctx)
	if user == nil {
		return nil, ErrUserNotFound
	}

	update.Apply(user)
	if err := ls.writeJSON(ctx, UserKey, user); err != nil {
		ls.logger.Error("Failed to persist user update", "error", err)
		return nil, err
	}
	return user, nil
}

// GetFavorites returns the raw ordered set of favorited listing ids.
func (ls *LocalStore) GetFavorites(ctx context.Context) []string {
	return ls.readFavorites(ctx)
}

// ToggleFavorite flips membership of id in the favorites set and
// returns the new state: true means the id is now favorited. A
// persistence failure is logged and reported as false so callers never
// show a favorite that was not stored.
func (ls *LocalStore) ToggleFavorite(ctx context.Context, id string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	favorites := ls.readFavorites(ctx)

	index := -1
	for i, fav := range favorites {
		if fav == id {
			index = i
			break
		}
	}

	if index >= 0 {
		favorites = append(favorites[:index], favorites[index+1:]...)
	} else {
		favorites = append(favorites, id)
	}

	if err := ls.writeJSON(ctx, FavoritesKey, favorites); err != nil {
		ls.logger.Error("Failed to persist favorites", "error", err)
		return false
	}
	return index < 0
}

// GetMyListings returns the listings sold by the current user, empty
// when no user record exists.
func (ls *LocalStore) GetMyListings(ctx context.Context) []models.Listing {
	user := ls.readUser(ctx)
	if user == nil {
		return nil
	}

	var mine []models.Listing
	for _, listing := range ls.ListListings(ctx) {
		if listing.SellerID == user.ID {
			mine = append(mine, listing)
		}
	}
	return mine
}

// SearchListings filters the enriched view by a case-insensitive
// substring match over number, description, seller name, and location.
// An empty query returns everything.
func (ls *LocalStore) SearchListings(ctx context.Context, query string) []models.Listing {
	listings := ls.ListListings(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listings
	}

	var results []models.Listing
	for _, listing := range listings {
		haystack := strings.ToLower(strings.Join([]string{
			listing.Number,
			listing.Description,
			listing.SellerName,
			listing.Location,
		}, " "))
		if strings.Contains(haystack, query) {
			results = append(results, listing)
		}
	}
	return results
}

// ListListingsByCategory filters the enriched view by category. An
// empty or "all" category returns everything.
func (ls *LocalStore) ListListingsByCategory(ctx context.Context, category string) []models.Listing {
	listings := ls.ListListings(ctx)
	if category == "" || category == "all" {
		return listings
	}

	var results []models.Listing
	for _, listing := range listings {
		if string(listing.Category) == category {
			results = append(results, listing)
		}
	}
	return results
}

// ClearAll removes every key this layer owns in one operation. Used by
// the destructive "reset app data" action.
func (ls *LocalStore) ClearAll(ctx context.Context) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if err := ls.kv.MultiRemove(ctx, ownedKeys); err != nil {
		ls.logger.Error("Failed to clear app data", "error", err)
		return err
	}
	return nil
}

// GetThemePreference returns the stored theme or ErrThemeNotSet when
// the key is absent or holds an unrecognized value.
func (ls *LocalStore) GetThemePreference(ctx context.Context) (models.ThemePreference, error) {
	value, found, err := ls.kv.Get(ctx, ThemeKey)
	if err != nil {
		ls.logger.Error("Failed to read theme preference", "error", err)
		return "", ErrThemeNotSet
	}
	if !found {
		return "", ErrThemeNotSet
	}

	theme, ok := models.ParseTheme(value)
	if !ok {
		return "", ErrThemeNotSet
	}
	return theme, nil
}

func (ls *LocalStore) SetThemePreference(ctx context.Context, theme models.ThemePreference) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if err := ls.kv.Set(ctx, ThemeKey, string(theme)); err != nil {
		ls.logger.Error("Failed to persist theme preference", "error", err)
		return err
	}
	return nil
}

// GetAppPreferences reads the three locale preference keys in one
// multi-get and normalizes each value. Stored values may be canonical
// tokens or legacy human-readable labels from an earlier app version;
// anything unrecognized falls back to the defaults.
func (ls *LocalStore) GetAppPreferences(ctx context.Context) models.AppPreferences {
	values, err := ls.kv.MultiGet(ctx, []string{LanguageKey, CurrencyKey, LocationKey})
	if err != nil {
		ls.logger.Error("Failed to read app preferences", "error", err)
		return models.DefaultPreferences()
	}

	return models.AppPreferences{
		Language: models.NormalizeLanguage(values[LanguageKey]),
		Currency: models.NormalizeCurrency(values[CurrencyKey]),
		Location: models.NormalizeLocation(values[LocationKey]),
	}
}

// SetAppPreference writes a canonical token under the key's slot. Only
// reads normalize; writes never round-trip through the legacy labels.
func (ls *LocalStore) SetAppPreference(ctx context.Context, key models.AppPreferenceKey, value string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	storageKey, ok := preferenceStorageKey(key)
	if !ok {
		return errors.New("unknown preference key: " + string(key))
	}

	if err := ls.kv.Set(ctx, storageKey, value); err != nil {
		ls.logger.Error("Failed to persist app preference", "key", key, "error", err)
		return err
	}
	return nil
}

func preferenceStorageKey(key models.AppPreferenceKey) (string, bool) {
	switch key {
	case models.PreferenceLanguage:
		return LanguageKey, true
	case models.PreferenceCurrency:
		return CurrencyKey, true
	case models.PreferenceLocation:
		return LocationKey, true
	}
	return "", false
}

func (ls *LocalStore) readListings(ctx context.Context) []models.Listing {
	value, found, err := ls.kv.Get(ctx, ListingsKey)
	if err != nil {
		ls.logger.Error("Failed to read listings", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var listings []models.Listing
	if err := json.Unmarshal([]byte(value), &listings); err != nil {
		ls.logger.Error("Corrupt listings data, treating as empty", "error", err)
		return nil
	}
	return listings
}

func (ls *LocalStore) readFavorites(ctx context.Context) []string {
	value, found, err := ls.kv.Get(ctx, FavoritesKey)
	if err != nil {
		ls.logger.Error("Failed to read favorites", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var favorites []string
	if err := json.Unmarshal([]byte(value), &favorites); err != nil {
		ls.logger.Error("Corrupt favorites data, treating as empty", "error", err)
		return nil
	}
	return favorites
}

func (ls *LocalStore) readUser(ctx context.Context) *models.User {
	value, found, err := ls.kv.Get(ctx, UserKey)
	if err != nil {
		ls.logger.Error("Failed to read user", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		ls.logger.Error("Corrupt user data, treating as absent", "error", err)
		return nil
	}
	return &user
}

func (ls *LocalStore) writeJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return ls.kv.Set(ctx, key, string(data))
}
