package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/result"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
)

// HTTPGetAllUsers returns a HandlerFunc that retrieves all existing users. Only
// an admin user can call this endpoint.
//
// The request context must hold the logged-in user.
func (api API) HTTPGetAllUsers() http.HandlerFunc {
	return api.endpoint(api.epGetAllUsers)
}

func (api API) epGetAllUsers(req *http.Request) result.Result {
	user := requestUser(req)

	if user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s): forbidden", user.Username, user.Role)
	}

	users, err := api.Backend.GetAllUsers(req.Context())
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]UserModel, len(users))
	for i := range users {
		resp[i] = userModel(users[i])
	}

	return result.OK(resp, "user '%s' got all users", user.Username)
}

// readNewUser reads a UserModel for creating a user and checks the fields
// that must be present.
func readNewUser(req *http.Request) (UserModel, dao.Role, *result.Result) {
	var createUser UserModel
	if err := parseJSON(req, &createUser); err != nil {
		r := result.BadRequest(err.Error(), err.Error())
		return createUser, 0, &r
	}
	if createUser.Username == "" {
		r := result.BadRequest("username: property is empty or missing from request", "empty username")
		return createUser, 0, &r
	}
	if createUser.Password == "" {
		r := result.BadRequest("password: property is empty or missing from request", "empty password")
		return createUser, 0, &r
	}

	role := dao.Unverified
	if createUser.Role != "" {
		var err error
		role, err = dao.ParseRole(createUser.Role)
		if err != nil {
			r := result.BadRequest("role: "+err.Error(), "role: %s", err.Error())
			return createUser, 0, &r
		}
	}

	return createUser, role, nil
}

func userWriteError(err error, username string) result.Result {
	if errors.Is(err, serr.ErrAlreadyExists) {
		return result.Conflict("User with that username already exists", "user '%s' already exists", username)
	} else if errors.Is(err, serr.ErrBadArgument) {
		return result.BadRequest(err.Error(), err.Error())
	} else if errors.Is(err, serr.ErrNotFound) {
		return result.NotFound()
	}
	return result.InternalServerError(err.Error())
}

// HTTPCreateUser returns a HandlerFunc that creates a new user entity. Only an
// admin user can directly create new users.
//
// The request context must hold the logged-in user.
func (api API) HTTPCreateUser() http.HandlerFunc {
	return api.endpoint(api.epCreateUser)
}

func (api API) epCreateUser(req *http.Request) result.Result {
	user := requestUser(req)

	if user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) creation of new user: forbidden", user.Username, user.Role)
	}

	createUser, role, errResult := readNewUser(req)
	if errResult != nil {
		return *errResult
	}

	newUser, err := api.Backend.CreateUser(req.Context(), createUser.Username, createUser.Password, createUser.Email, role)
	if err != nil {
		return userWriteError(err, createUser.Username)
	}

	resp := userModel(newUser)
	return result.Created(resp, "user '%s' (%s) created", resp.Username, resp.ID)
}

// HTTPGetUser returns a HandlerFunc that gets an existing user. All users may
// retrieve themselves, but only an admin user can retrieve details on other
// users.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the user to get.
func (api API) HTTPGetUser() http.HandlerFunc {
	return api.endpoint(api.epGetUser)
}

func (api API) epGetUser(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := requestUser(req)

	if id != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) get user %s: forbidden", user.Username, user.Role, id)
	}

	userInfo, err := api.Backend.GetUser(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not get user: " + err.Error())
	}

	otherStr := "self"
	if id != user.ID {
		otherStr = "user '" + userInfo.Username + "'"
	}

	return result.OK(userModel(userInfo), "user '%s' successfully got %s", user.Username, otherStr)
}

// HTTPUpdateUser returns a HandlerFunc that updates an existing user. Only
// properties that are not auto-calculated can be updated. All users may update
// themselves, but only an admin user may update other users or change a role.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the user to update.
func (api API) HTTPUpdateUser() http.HandlerFunc {
	return api.endpoint(api.epUpdateUser)
}

func (api API) epUpdateUser(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := requestUser(req)

	if id != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) update user %s: forbidden", user.Username, user.Role, id)
	}

	var updateReq UserUpdateRequest
	err := parseJSON(req, &updateReq)
	if err != nil {
		if errors.Is(err, serr.ErrBodyUnmarshal) {
			// did they send a normal user?
			var normalUser UserModel
			if parseJSON(req, &normalUser) == nil {
				return result.BadRequest("updated fields must be objects with keys {'u': true, 'v': NEW_VALUE}", "request is UserModel, not UserUpdateRequest")
			}
		}

		return result.BadRequest(err.Error(), err.Error())
	}

	// parse everything before hitting the DB
	var updateRole dao.Role
	if updateReq.Role.Update {
		if user.Role != dao.Admin {
			return result.Forbidden("user '%s' (role %s) set role: forbidden", user.Username, user.Role)
		}
		updateRole, err = dao.ParseRole(updateReq.Role.Value)
		if err != nil {
			return result.BadRequest(err.Error(), err.Error())
		}
	}
	var updateID uuid.UUID
	if updateReq.ID.Update {
		updateID, err = uuid.Parse(updateReq.ID.Value)
		if err != nil {
			return result.BadRequest("id: not a valid UUID", "id: %s", err.Error())
		}
	}

	existing, err := api.Backend.GetUser(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError(err.Error())
	}

	var newEmail string
	if existing.Email != nil {
		newEmail = existing.Email.Address
	}
	if updateReq.Email.Update {
		newEmail = updateReq.Email.Value
	}
	newID := existing.ID
	if updateReq.ID.Update {
		newID = updateID
	}
	newUsername := existing.Username
	if updateReq.Username.Update {
		newUsername = updateReq.Username.Value
	}
	newRole := existing.Role
	if updateReq.Role.Update {
		newRole = updateRole
	}

	// TODO: this is sequential modification. we need to update this when we get
	// transactions on dao.
	updated, err := api.Backend.UpdateUser(req.Context(), id, newID, newUsername, newEmail, newRole)
	if err != nil {
		return userWriteError(err, newUsername)
	}
	if updateReq.Password.Update {
		updated, err = api.Backend.UpdatePassword(req.Context(), updated.ID, updateReq.Password.Value)
		if err != nil {
			return userWriteError(err, newUsername)
		}
	}

	resp := userModel(updated)
	return result.OK(resp, "user '%s' (%s) updated", resp.Username, resp.ID)
}

// HTTPReplaceUser returns a HandlerFunc that creates a user with the ID given
// in the URI. Only an admin user may do this.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the new user.
func (api API) HTTPReplaceUser() http.HandlerFunc {
	return api.endpoint(api.epReplaceUser)
}

func (api API) epReplaceUser(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := requestUser(req)

	if user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) creation of new user: forbidden", user.Username, user.Role)
	}

	createUser, role, errResult := readNewUser(req)
	if errResult != nil {
		return *errResult
	}
	if createUser.ID == "" {
		createUser.ID = id.String()
	}
	if createUser.ID != id.String() {
		return result.BadRequest("id: must be same as ID in URI", "body ID different from URI ID")
	}

	newUser, err := api.Backend.CreateUser(req.Context(), createUser.Username, createUser.Password, createUser.Email, role)
	if err != nil {
		return userWriteError(err, createUser.Username)
	}

	// but also update it immediately to set its user ID
	newUser, err = api.Backend.UpdateUser(req.Context(), newUser.ID, id, newUser.Username, createUser.Email, newUser.Role)
	if err != nil {
		return userWriteError(err, createUser.Username)
	}

	resp := userModel(newUser)
	return result.Created(resp, "user '%s' (%s) created", resp.Username, resp.ID)
}

// HTTPDeleteUser returns a HandlerFunc that deletes a user entity. All users
// may delete themselves, but only an admin user may delete another user.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the user to delete.
func (api API) HTTPDeleteUser() http.HandlerFunc {
	return api.endpoint(api.epDeleteUser)
}

func (api API) epDeleteUser(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := requestUser(req)

	if id != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) delete user %s: forbidden", user.Username, user.Role, id)
	}

	deletedUser, err := api.Backend.DeleteUser(req.Context(), id)
	if err != nil && !errors.Is(err, serr.ErrNotFound) {
		return result.InternalServerError("could not delete user: " + err.Error())
	}

	var otherStr string
	if id != user.ID {
		if deletedUser.Username != "" {
			otherStr = "user '" + deletedUser.Username + "'"
		} else {
			otherStr = "user " + id.String() + " (no-op)"
		}
	} else {
		otherStr = "self"
	}

	return result.NoContent("user '%s' successfully deleted %s", user.Username, otherStr)
}
