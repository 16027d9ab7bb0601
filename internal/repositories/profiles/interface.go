package profiles

//go:generate mockgen -destination=mock/mock.go -package=mockprofiles -source=interface.go

import (
	"context"

	"github.com/Kkzin999/sun/internal/domain/character"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// Get returns the stored profile, or a fresh default one if the character
	// has never been saved. It never returns NotFound.
	Get(ctx context.Context, ref character.Ref) (*character.Profile, error)

	// Upsert stores the profile, stamping UpdatedAt (and CreatedAt on first save)
	Upsert(ctx context.Context, profile *character.Profile) error
}
