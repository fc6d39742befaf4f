package svc

import (
	"context"
	"errors"
	"net/mail"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
)

// GetAllUsers returns all users currently in persistence.
func (svc Service) GetAllUsers(ctx context.Context) ([]dao.User, error) {
	users, err := svc.DB.Users().GetAll(ctx)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return users, nil
}

// GetUser returns the user with the given ID.
//
// The returned error matches serr.ErrNotFound if no user with that ID exists
// and serr.ErrDB for problems with persistence.
func (svc Service) GetUser(ctx context.Context, id uuid.UUID) (dao.User, error) {
	user, err := svc.DB.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.ErrNotFound
		}
		return dao.User{}, serr.WrapDB("could not get user", err)
	}

	return user, nil
}

func parseEmail(email string) (*mail.Address, error) {
	if email == "" {
		return nil, nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, serr.New("email is not valid", err, serr.ErrBadArgument)
	}
	return addr, nil
}

// CreateUser creates a new user and returns it as it exists after creation.
//
// The returned error matches serr.ErrAlreadyExists if the username is taken,
// serr.ErrBadArgument if an argument is invalid and serr.ErrDB for problems
// with persistence.
func (svc Service) CreateUser(ctx context.Context, username, password, email string, role dao.Role) (dao.User, error) {
	if username == "" {
		return dao.User{}, serr.New("username cannot be blank", serr.ErrBadArgument)
	}
	if password == "" {
		return dao.User{}, serr.New("password cannot be blank", serr.ErrBadArgument)
	}

	storedEmail, err := parseEmail(email)
	if err != nil {
		return dao.User{}, err
	}

	_, err = svc.DB.Users().GetByUsername(ctx, username)
	if err == nil {
		return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
	} else if !errors.Is(err, dao.ErrNotFound) {
		return dao.User{}, serr.WrapDB("", err)
	}

	storedPass, err := svc.hashPassword(password)
	if err != nil {
		return dao.User{}, err
	}

	user, err := svc.DB.Users().Create(ctx, dao.User{
		Username: username,
		Password: storedPass,
		Email:    storedEmail,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, dao.ErrConstraintViolation) {
			return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
		}
		return dao.User{}, serr.WrapDB("could not create user", err)
	}

	return user, nil
}

// UpdateUser replaces the ID, username, email and role of the user with ID
// curID. Passwords are changed with UpdatePassword instead.
//
// The returned error matches serr.ErrNotFound if there is no such user,
// serr.ErrAlreadyExists if the new ID or username is taken,
// serr.ErrBadArgument if an argument is invalid and serr.ErrDB for problems
// with persistence.
func (svc Service) UpdateUser(ctx context.Context, curID, newID uuid.UUID, username, email string, role dao.Role) (dao.User, error) {
	if username == "" {
		return dao.User{}, serr.New("username cannot be blank", serr.ErrBadArgument)
	}

	storedEmail, err := parseEmail(email)
	if err != nil {
		return dao.User{}, err
	}

	daoUser, err := svc.DB.Users().GetByID(ctx, curID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.New("user not found", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	if curID != newID {
		_, err := svc.DB.Users().GetByID(ctx, newID)
		if err == nil {
			return dao.User{}, serr.New("a user with that ID already exists", serr.ErrAlreadyExists)
		} else if !errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.WrapDB("", err)
		}
	}
	if daoUser.Username != username {
		_, err := svc.DB.Users().GetByUsername(ctx, username)
		if err == nil {
			return dao.User{}, serr.New("a user with that username already exists", serr.ErrAlreadyExists)
		} else if !errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.WrapDB("", err)
		}
	}

	daoUser.Email = storedEmail
	daoUser.ID = newID
	daoUser.Username = username
	daoUser.Role = role

	updatedUser, err := svc.DB.Users().Update(ctx, curID, daoUser)
	if err != nil {
		if errors.Is(err, dao.ErrConstraintViolation) {
			return dao.User{}, serr.New("a user with that ID/username already exists", serr.ErrAlreadyExists)
		} else if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.New("user not found", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	return updatedUser, nil
}

// UpdatePassword sets the password of the user with the given ID. The new
// password cannot be empty. Returns the updated user.
//
// The returned error matches serr.ErrNotFound if there is no such user,
// serr.ErrBadArgument if the password is invalid and serr.ErrDB for problems
// with persistence.
func (svc Service) UpdatePassword(ctx context.Context, id uuid.UUID, password string) (dao.User, error) {
	if password == "" {
		return dao.User{}, serr.New("password cannot be empty", serr.ErrBadArgument)
	}

	existing, err := svc.DB.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.New("no user with that ID exists", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("", err)
	}

	existing.Password, err = svc.hashPassword(password)
	if err != nil {
		return dao.User{}, err
	}

	updated, err := svc.DB.Users().Update(ctx, id, existing)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.New("no user with that ID exists", serr.ErrNotFound)
		}
		return dao.User{}, serr.WrapDB("could not update user", err)
	}

	return updated, nil
}

// DeleteUser deletes the user with the given ID along with their saved
// queries. It returns the deleted user.
//
// The returned error matches serr.ErrNotFound if there is no such user and
// serr.ErrDB for problems with persistence.
func (svc Service) DeleteUser(ctx context.Context, id uuid.UUID) (dao.User, error) {
	// not every store cascades, so remove the queries first
	saved, err := svc.DB.Queries().GetAllByUser(ctx, id)
	if err != nil {
		return dao.User{}, serr.WrapDB("could not get user's queries", err)
	}
	for _, q := range saved {
		if _, err := svc.DB.Queries().Delete(ctx, q.ID); err != nil && !errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.WrapDB("could not delete user's queries", err)
		}
	}

	user, err := svc.DB.Users().Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.User{}, serr.ErrNotFound
		}
		return dao.User{}, serr.WrapDB("could not delete user", err)
	}

	return user, nil
}
