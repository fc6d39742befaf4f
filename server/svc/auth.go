package svc

import (
	"context"
	"errors"
	"time"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
)

// Login checks username and password against the stored account and records
// the time of the login.
//
// The returned error matches serr.ErrBadCredentials whether the user is
// unknown or the password is wrong, so callers cannot tell which.
func (svc Service) Login(ctx context.Context, username string, password string) (dao.User, error) {
	user, err := svc.DB.Users().GetByUsername(ctx, username)
	if errors.Is(err, dao.ErrNotFound) {
		return dao.User{}, serr.ErrBadCredentials
	} else if err != nil {
		return dao.User{}, serr.WrapDB("look up user", err)
	}

	if err := checkPassword(user.Password, password); err != nil {
		return dao.User{}, err
	}

	return svc.stamp(ctx, user, func(u *dao.User, now time.Time) { u.LastLoginTime = now })
}

// Logout records that the user with the given ID logged out. Tokens are
// signed with a key that includes the last logout time, so every token
// issued before this call stops validating.
//
// The returned error matches serr.ErrNotFound if the user doesn't exist.
func (svc Service) Logout(ctx context.Context, who uuid.UUID) (dao.User, error) {
	user, err := svc.GetUser(ctx, who)
	if err != nil {
		return dao.User{}, err
	}

	return svc.stamp(ctx, user, func(u *dao.User, now time.Time) { u.LastLogoutTime = now })
}

// stamp applies set to u with the current time and saves it.
func (svc Service) stamp(ctx context.Context, u dao.User, set func(*dao.User, time.Time)) (dao.User, error) {
	set(&u, time.Now())

	saved, err := svc.DB.Users().Update(ctx, u.ID, u)
	if err != nil {
		return dao.User{}, serr.WrapDB("save user", err)
	}
	return saved, nil
}
