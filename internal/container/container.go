package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/raqamhq/raqam/internal/kv"
	"github.com/raqamhq/raqam/internal/services"
	"github.com/raqamhq/raqam/internal/store"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// External clients
	SupabaseClient *supabase.Client
	// Storage and services
	KV          kv.Store
	LocalStore  *store.LocalStore
	AuthService *services.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	kvStore kv.Store,
) *Container {
	localStore := store.New(kvStore, logger)
	authService := services.NewAuthService(supabaseClient, localStore, logger)

	return &Container{
		Logger:         logger,
		Cloudinary:     cld,
		SupabaseClient: supabaseClient,
		KV:             kvStore,
		LocalStore:     localStore,
		AuthService:    authService,
	}
}
