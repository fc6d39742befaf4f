// Package svc has the operations of the Marlin server, decoupled from the
// HTTP API that exposes them.
package svc

import (
	"encoding/base64"
	"errors"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/serr"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt cost used for passwords when Service.HashCost
// is not set.
const DefaultHashCost = 14

// Service performs the actions requested of the Marlin server and keeps its
// state in persistence.
//
// The zero-value of Service is not ready to be used; assign a valid DAO store
// to DB and an analysis of the SPARQL grammar to Grammar before using it.
// Grammar must have had Precompute called on it, since Service may be used
// from many goroutines.
type Service struct {

	// DB is the persistence store of the service.
	DB dao.Store

	// Grammar answers questions about grammar rules.
	Grammar *grammar.Analysis

	// HashCost is the bcrypt cost of stored passwords. If 0, DefaultHashCost
	// is used.
	HashCost int
}

func (svc Service) hashPassword(password string) (string, error) {
	cost := svc.HashCost
	if cost == 0 {
		cost = DefaultHashCost
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", serr.New("password is too long", err, serr.ErrBadArgument)
		}
		return "", serr.New("password could not be encrypted", err)
	}

	return base64.StdEncoding.EncodeToString(passHash), nil
}

// checkPassword returns serr.ErrBadCredentials if password does not match the
// stored hash.
func checkPassword(stored, password string) error {
	bcryptHash, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return serr.New("stored password is corrupt", err)
	}

	err = bcrypt.CompareHashAndPassword(bcryptHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return serr.ErrBadCredentials
		}
		return serr.New("could not check password", err)
	}
	return nil
}
