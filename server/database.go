package server

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/dao/inmem"
	"github.com/dekarrin/marlin/server/dao/sqlite"
)

// DBType names a kind of store that saved queries and users are kept in.
type DBType string

func (dbt DBType) String() string {
	return string(dbt)
}

const (
	DatabaseNone     DBType = "none"
	DatabaseSQLite   DBType = "sqlite"
	DatabaseInMemory DBType = "inmem"
)

// dbEngine describes how to open one DBType.
type dbEngine struct {
	// usesDir is whether the engine keeps its data in Database.DataDir.
	usesDir bool
	open    func(dir string) (dao.Store, error)
}

var dbEngines = map[DBType]dbEngine{
	DatabaseInMemory: {
		open: func(string) (dao.Store, error) { return inmem.NewDatastore(), nil },
	},
	DatabaseSQLite: {
		usesDir: true,
		open: func(dir string) (dao.Store, error) {
			if err := os.MkdirAll(dir, 0770); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
			return sqlite.NewDatastore(dir)
		},
	},
}

func lookupEngine(t DBType) (dbEngine, error) {
	if t == DatabaseNone {
		return dbEngine{}, fmt.Errorf("'none' is not a usable database (perhaps you wanted 'inmem'?)")
	}
	eng, ok := dbEngines[t]
	if !ok {
		return dbEngine{}, fmt.Errorf("unknown database type %q; must be 'sqlite' or 'inmem'", t.String())
	}
	return eng, nil
}

// ParseDBType parses the engine part of a connection string.
func ParseDBType(s string) (DBType, error) {
	t := DBType(strings.ToLower(s))
	if _, err := lookupEngine(t); err != nil {
		return DatabaseNone, err
	}
	return t, nil
}

// Database says which store the server keeps its data in.
type Database struct {
	Type DBType

	// DataDir is the directory data files are kept in, for engines that use
	// files.
	DataDir string
}

// ParseDBConnString parses a connection string of the form "engine" or
// "engine:param". The in-memory engine takes no param ("inmem") and the
// SQLite engine takes the directory to keep its database file in
// ("sqlite:/var/lib/marlin").
func ParseDBConnString(s string) (Database, error) {
	engName, param, _ := strings.Cut(s, ":")
	param = strings.TrimSpace(param)

	t, err := ParseDBType(strings.TrimSpace(engName))
	if err != nil {
		return Database{}, err
	}

	eng := dbEngines[t]
	switch {
	case eng.usesDir && param == "":
		return Database{}, fmt.Errorf("%s needs a data directory after ':'", t)
	case !eng.usesDir && param != "":
		return Database{}, fmt.Errorf("%s takes no parameters, but got %q", t, param)
	}

	return Database{Type: t, DataDir: param}, nil
}

// Validate returns an error if db does not name a usable engine or is missing
// something its engine needs.
func (db Database) Validate() error {
	eng, err := lookupEngine(db.Type)
	if err != nil {
		return err
	}
	if eng.usesDir && db.DataDir == "" {
		return fmt.Errorf("%s needs a data directory", db.Type)
	}
	return nil
}

// Connect opens the store db describes.
func (db Database) Connect() (dao.Store, error) {
	if err := db.Validate(); err != nil {
		return nil, err
	}

	store, err := dbEngines[db.Type].open(db.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", db.Type, err)
	}
	return store, nil
}
