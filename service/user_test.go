package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/code4projects/raceboard/models"
)

func TestUserService_Authenticate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = db.NewInsert().Model(&models.User{Username: "salvatore", Password: string(hash)}).Exec(ctx)
	require.NoError(t, err)

	svc := NewUserService(db)

	user, err := svc.Authenticate(ctx, "salvatore", "secret")
	require.NoError(t, err)
	require.Equal(t, "salvatore", user.Username)

	_, err = svc.Authenticate(ctx, "salvatore", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
