package service

import (
	"context"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

type ctxKeyUser struct{}

func ctxWithUser(ctx context.Context, user *data.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, user)
}

func userFromCtx(ctx context.Context) *data.User {
	user, _ := ctx.Value(ctxKeyUser{}).(*data.User)
	return user
}
