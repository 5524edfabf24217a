package identity

import (
	"context"
	"errors"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"
	"artisan-market/utils"
)

// UnknownName is shown when an identity resolves to no principal
const UnknownName = "Unknown User"

// lookupOrder is the preference used when the kind of an identity is not known
var lookupOrder = []models.PrincipalKind{models.KindBuyer, models.KindInstructor, models.KindSeller}

// NameCache is an optional store for resolved names
type NameCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, name string)
	Invalidate(ctx context.Context, key string)
}

func nameKey(kind models.PrincipalKind, identity string) string {
	return string(kind) + ":" + identity
}

// Directory resolves identities to display names
type Directory struct {
	store repository.PrincipalStore
	cache NameCache
}

// NewDirectory creates a Directory; cache may be nil
func NewDirectory(store repository.PrincipalStore, cache NameCache) *Directory {
	return &Directory{store: store, cache: cache}
}

// DisplayName resolves identity across buyers, instructors and sellers, in that order
func (d *Directory) DisplayName(ctx context.Context, identity string) string {
	for _, kind := range lookupOrder {
		if name, ok := d.lookup(ctx, kind, identity); ok {
			return name
		}
	}
	return UnknownName
}

// DisplayNameFor resolves identity as a principal of kind
func (d *Directory) DisplayNameFor(ctx context.Context, kind models.PrincipalKind, identity string) string {
	if name, ok := d.lookup(ctx, kind, identity); ok {
		return name
	}
	return UnknownName
}

func (d *Directory) lookup(ctx context.Context, kind models.PrincipalKind, identity string) (string, bool) {
	if identity == "" {
		return "", false
	}

	key := nameKey(kind, identity)
	if d.cache != nil {
		if name, ok := d.cache.Get(ctx, key); ok {
			return name, true
		}
	}

	p, err := d.find(ctx, kind, identity)
	if err != nil {
		if !errors.Is(err, marketerrors.ErrPrincipalNotFound) {
			utils.Warn("directory: lookup failed", map[string]any{"kind": kind, "identity": identity, "error": err.Error()})
		}
		return "", false
	}

	name := p.DisplayName()
	if name == "" {
		name = p.Email
	}
	if d.cache != nil {
		d.cache.Set(ctx, key, name)
	}
	return name, true
}

func (d *Directory) find(ctx context.Context, kind models.PrincipalKind, identity string) (models.Principal, error) {
	if kind != models.KindInstructor {
		return d.store.FindPrincipalByEmail(ctx, kind, identity)
	}
	p, err := d.store.GetPrincipal(ctx, identity)
	if err != nil {
		return models.Principal{}, err
	}
	if p.Kind != models.KindInstructor {
		return models.Principal{}, marketerrors.ErrPrincipalNotFound
	}
	return p, nil
}
