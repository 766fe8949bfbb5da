package cli

import "github.com/camontes/resinabot/internal/storage"

// Context carries the service handles kong commands run against.
type Context struct {
	Store storage.Provider
}
