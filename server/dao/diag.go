package dao

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// MarshalBinary encodes d with REZI.
func (d Diagnostic) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(d.Message)...)
	data = append(data, rezi.EncString(d.Found)...)
	data = append(data, rezi.EncInt(d.Start)...)
	data = append(data, rezi.EncInt(d.End)...)
	return data, nil
}

// UnmarshalBinary decodes data created by MarshalBinary into d.
func (d *Diagnostic) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	d.Message, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}
	data = data[n:]

	d.Found, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("found: %w", err)
	}
	data = data[n:]

	d.Start, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	data = data[n:]

	d.End, _, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	return nil
}

// DiagnosticList is a list of Diagnostics that can be encoded as one REZI
// value.
type DiagnosticList []Diagnostic

// MarshalBinary encodes the count of diagnostics followed by each one.
func (dl DiagnosticList) MarshalBinary() ([]byte, error) {
	data := rezi.EncInt(len(dl))
	for i := range dl {
		data = append(data, rezi.EncBinary(dl[i])...)
	}
	return data, nil
}

// UnmarshalBinary decodes data created by MarshalBinary into dl.
func (dl *DiagnosticList) UnmarshalBinary(data []byte) error {
	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	data = data[n:]

	// each encoded diagnostic takes at least one byte
	if count < 0 || count > len(data) {
		return fmt.Errorf("count: %d diagnostics cannot be held in %d bytes", count, len(data))
	}

	list := make(DiagnosticList, count)
	for i := range list {
		n, err = rezi.DecBinary(data, &list[i])
		if err != nil {
			return fmt.Errorf("diagnostic %d: %w", i, err)
		}
		data = data[n:]
	}

	*dl = list
	return nil
}
