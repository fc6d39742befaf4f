package sqlite

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"time"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

func convertToDB_UUID(u uuid.UUID) string {
	return u.String()
}

func convertFromDB_UUID(s string, target *uuid.UUID) error {
	u, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*target = u
	return nil
}

// times are stored as unix microseconds; the zero time is stored as 0.
func convertToDB_Time(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func convertFromDB_Time(i int64, target *time.Time) error {
	if i == 0 {
		*target = time.Time{}
		return nil
	}
	*target = time.UnixMicro(i)
	return nil
}

func convertToDB_Email(email *mail.Address) string {
	if email == nil {
		return ""
	}
	return email.Address
}

func convertFromDB_Email(s string, target **mail.Address) error {
	if s == "" {
		*target = nil
		return nil
	}
	email, err := mail.ParseAddress(s)
	if err != nil {
		return err
	}
	*target = email
	return nil
}

func convertToDB_Role(r dao.Role) int64 {
	return int64(r)
}

func convertFromDB_Role(i int64, target *dao.Role) error {
	r := dao.Role(i)
	if _, err := dao.ParseRole(r.String()); err != nil {
		return fmt.Errorf("not a known role: %d", i)
	}
	*target = r
	return nil
}

// diagnostics are stored as base64 of their REZI encoding.
func convertToDB_Diagnostics(diags []dao.Diagnostic) string {
	data := rezi.EncBinary(dao.DiagnosticList(diags))
	return base64.StdEncoding.EncodeToString(data)
}

func convertFromDB_Diagnostics(s string, target *[]dao.Diagnostic) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}

	var list dao.DiagnosticList
	if _, err := rezi.DecBinary(data, &list); err != nil {
		return err
	}

	if len(list) == 0 {
		*target = nil
	} else {
		*target = list
	}
	return nil
}
