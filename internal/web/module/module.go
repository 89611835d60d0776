// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/storage"
)

// ResultCreator persists completed assessments.
type ResultCreator interface {
	Create(ctx context.Context, answers form.AnswerSet, score int) (string, error)
}

// ResultGetter loads one assessment by id.
type ResultGetter interface {
	GetByID(ctx context.Context, id string) (storage.Record, error)
}

// ResultLister enumerates every stored assessment, newest first.
type ResultLister interface {
	GetAll(ctx context.Context) ([]storage.Record, error)
}

// ResultEmailFinder looks up assessments by contact email, newest first.
type ResultEmailFinder interface {
	GetByEmail(ctx context.Context, email string) ([]storage.Record, error)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
