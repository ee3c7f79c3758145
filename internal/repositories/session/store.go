package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/storage"
)

// Claims is the payload of the persisted session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// StoreRepository implements Repository on a storage.Store blob. The blob
// under storage.KeySession is an HS256-signed token carrying the email, or
// the empty string when nobody is logged in. A blob that fails to parse or
// verify is treated as "no session": logged, never propagated.
type StoreRepository struct {
	store  storage.Store
	secret []byte
	log    logging.Logger
}

func NewStoreRepository(store storage.Store, secret []byte, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, secret: secret, log: log}
}

func (r *StoreRepository) Get(ctx context.Context) (*models.Session, error) {
	blob, err := r.store.Read(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if blob == "" {
		return nil, nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(blob, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid || claims.Email == "" {
		r.log.Warn(ctx, "error decoding session blob, treating as logged out", "error", err)
		return nil, nil
	}

	return &models.Session{Email: claims.Email}, nil
}

func (r *StoreRepository) Set(ctx context.Context, s models.Session) error {
	claims := &Claims{
		Email: s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "curio",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeySession, token); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (r *StoreRepository) Clear(ctx context.Context) error {
	if err := r.store.Write(ctx, storage.KeySession, ""); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
