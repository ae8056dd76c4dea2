// Package repomanager owns the database handle and hands out the
// repositories built on top of it.
package repomanager

import (
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/authentications"
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Authentications() authentications.Repository
	Close() error
}
