package envfile

import (
	"errors"
	"fmt"
	"os"
)

// Managed namespace: the connection keys this package owns exclusively.
// Reconcile rewrites exactly these, in exactly this order.
var managedKeys = []string{
	"DB_CONNECTION",
	"DB_HOST",
	"DB_PORT",
	"DB_DATABASE",
	"DB_USERNAME",
	"DB_PASSWORD",
}

// ManagedKeys returns the managed namespace in canonical order.
func ManagedKeys() []string {
	keys := make([]string, len(managedKeys))
	copy(keys, managedKeys)
	return keys
}

// IsSecretKey reports whether a managed key holds a secret value.
func IsSecretKey(key string) bool {
	return key == "DB_PASSWORD"
}

// Defaults for the managed connection settings.
const (
	DefaultConnection = "mysql"
	DefaultHost       = "127.0.0.1"
	DefaultPort       = "3306"
)

// Alias lists for credential extraction, in priority order. Historically
// used key names from older layouts are accepted on read; writes always
// use the canonical DB_* keys.
var (
	usernameAliases = []string{"DB_USERNAME", "MYSQL_USER", "DATABASE_USER"}
	passwordAliases = []string{"DB_PASSWORD", "MYSQL_PASSWORD", "DATABASE_PASSWORD"}
	databaseAliases = []string{"DB_DATABASE", "MYSQL_DATABASE", "DATABASE_NAME"}
)

// ErrNoCredentials indicates no complete credential triple was found.
var ErrNoCredentials = errors.New("no database credentials found")

// Credentials is a complete database credential set. A value is only ever
// constructed with all three fields present.
type Credentials struct {
	Username string
	Password string
	Database string
}

// ExtractCredentials searches the file for a complete credential triple
// using the alias lists. It returns ErrNoCredentials unless a value is
// found for every field under some alias; partial matches are discarded so
// the caller falls back to generating or prompting for fresh credentials.
func ExtractCredentials(f *File) (*Credentials, error) {
	username, okUser := lookupAliases(f, usernameAliases)
	password, okPass := lookupAliases(f, passwordAliases)
	database, okDB := lookupAliases(f, databaseAliases)

	if !okUser || !okPass || !okDB {
		return nil, ErrNoCredentials
	}
	return &Credentials{Username: username, Password: password, Database: database}, nil
}

func lookupAliases(f *File, aliases []string) (string, bool) {
	for _, key := range aliases {
		if value, ok := f.Lookup(key); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// ExtractFromPath loads the env file at path and extracts credentials.
// A missing or unreadable file degrades to ErrNoCredentials rather than
// failing the run; the caller obtains credentials by other means.
func ExtractFromPath(path string) (*Credentials, error) {
	f, err := Load(path)
	if err != nil {
		return nil, ErrNoCredentials
	}
	return ExtractCredentials(f)
}

// Merge folds the credentials into the file: every managed line is removed
// and the canonical managed block is appended in fixed order. Lines outside
// the managed namespace are untouched, so merging twice with the same
// credentials is byte-identical.
func Merge(f *File, creds *Credentials) {
	f.Remove(managedKeys...)
	f.Set("DB_CONNECTION", DefaultConnection)
	f.Set("DB_HOST", DefaultHost)
	f.Set("DB_PORT", DefaultPort)
	f.Set("DB_DATABASE", creds.Database)
	f.Set("DB_USERNAME", creds.Username)
	f.Set("DB_PASSWORD", creds.Password)
}

// Reconcile reads the env file at path (an absent or unreadable file is
// treated as empty), merges the credentials, and writes the result back
// atomically with owner-only permissions. An unwritable target is fatal
// and propagates.
func Reconcile(path string, creds *Credentials) error {
	if creds == nil {
		return fmt.Errorf("cannot reconcile nil credentials")
	}

	f := &File{}
	if data, err := os.ReadFile(path); err == nil {
		f = Parse(data)
	}

	Merge(f, creds)

	if err := f.WriteAtomic(path); err != nil {
		return fmt.Errorf("failed to reconcile env file %s: %w", path, err)
	}
	return nil
}
