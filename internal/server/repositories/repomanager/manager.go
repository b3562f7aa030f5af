package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/history"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/subjects"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Subjects(db dbx.DBTX) subjects.Repository
	History(db dbx.DBTX) history.Repository
}
