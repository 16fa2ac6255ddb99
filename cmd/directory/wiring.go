package main

import (
	"go.uber.org/zap"

	config "github.com/f2fin/directory-dashboard/internal/configurations"
	"github.com/f2fin/directory-dashboard/internal/models"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/resources"
	"github.com/f2fin/directory-dashboard/internal/session"
)

// backend bundles the descriptors and repositories of every collection
type backend struct {
	client *repositories.Client
	auth   repositories.AuthRepository

	bankersDesc   resources.Descriptor[models.DirectoryEntry]
	directoryDesc resources.Descriptor[models.BankerDirectory]
	lendersDesc   resources.Descriptor[models.Lender]

	bankers   repositories.Repository[models.DirectoryEntry]
	directory repositories.Repository[models.BankerDirectory]
	lenders   repositories.Repository[models.Lender]
}

func paths(ep config.Endpoint) repositories.Paths {
	return repositories.Paths{List: ep.ListPath, Create: ep.CreatePath}
}

func newBackend(cfg *config.Config, store *session.Store, log *zap.Logger) *backend {
	opts := []repositories.ClientOption{repositories.WithLogger(log)}
	if cfg.Backend.AttachToken && store != nil {
		opts = append(opts, repositories.WithTokenSource(store.Token))
	}
	client := repositories.NewClient(cfg.Backend.BaseURL, opts...)

	b := &backend{
		client:        client,
		auth:          repositories.NewAuthRepository(client),
		bankersDesc:   resources.Bankers(paths(cfg.Endpoints.Bankers)),
		directoryDesc: resources.BankerDirectories(paths(cfg.Endpoints.BankerDirectory)),
		lendersDesc:   resources.Lenders(paths(cfg.Endpoints.Lenders)),
	}
	b.bankers = repositories.NewRESTRepository[models.DirectoryEntry](client, b.bankersDesc.Paths)
	b.directory = repositories.NewRESTRepository[models.BankerDirectory](client, b.directoryDesc.Paths)
	b.lenders = repositories.NewRESTRepository[models.Lender](client, b.lendersDesc.Paths)
	return b
}

// openSession loads the stored session. A corrupt file is logged and treated as signed out.
func openSession(cfg *config.Config, log *zap.Logger) *session.Store {
	store := session.NewStore(cfg.Session.File)
	if err := store.Load(); err != nil {
		log.Warn("ignoring unreadable session", zap.String("file", cfg.Session.File), zap.Error(err))
	}
	return store
}
