package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type HostReadStore struct {
	db db.DBTX
}

func NewHostReadStore(dbtx db.DBTX) *HostReadStore {
	return &HostReadStore{db: dbtx}
}

const hostByIDSQL = `
SELECT id, name, slug, email, timezone
FROM hosts
WHERE id = $1`

func (r *HostReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HostView, error) {
	var view queries.HostView
	err := r.db.QueryRow(ctx, hostByIDSQL, id).Scan(
		&view.ID, &view.Name, &view.Slug, &view.Email, &view.Timezone,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("host not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find host", err)
	}
	return &view, nil
}

const listHostsSQL = `
SELECT id, name, slug, email, timezone
FROM hosts
ORDER BY name`

func (r *HostReadStore) List(ctx context.Context) ([]*queries.HostView, error) {
	rows, err := r.db.Query(ctx, listHostsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hosts", err)
	}
	defer rows.Close()

	var hosts []*queries.HostView
	for rows.Next() {
		var view queries.HostView
		if err := rows.Scan(&view.ID, &view.Name, &view.Slug, &view.Email, &view.Timezone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan host row", err)
		}
		hosts = append(hosts, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate host rows", err)
	}
	return hosts, nil
}

// HostReads adapts the read store to the write side's snapshot port.
type HostReads struct {
	store *HostReadStore
}

func NewHostReads(store *HostReadStore) *HostReads {
	return &HostReads{store: store}
}

func (r *HostReads) HostByID(ctx context.Context, id uuid.UUID) (*commands.HostSnapshot, error) {
	host, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.HostSnapshot{
		ID:       host.ID,
		Name:     host.Name,
		Email:    host.Email,
		Timezone: host.Timezone,
	}, nil
}
