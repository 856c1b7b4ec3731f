package readstore

import (
	"context"

	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	gocache "github.com/patrickmn/go-cache"
)

type CampusReadStore struct {
	pool *pgxpool.Pool
}

func NewCampusReadStore(pool *pgxpool.Pool) *CampusReadStore {
	return &CampusReadStore{pool: pool}
}

func (s *CampusReadStore) List(ctx context.Context) ([]*queries.CampusView, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM campuses ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campuses", err)
	}
	defer rows.Close()

	views := make([]*queries.CampusView, 0)
	for rows.Next() {
		var view queries.CampusView
		if err := rows.Scan(&view.ID, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campus", err)
		}
		views = append(views, &view)
	}
	return views, rows.Err()
}

func (s *CampusReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampusView, error) {
	var view queries.CampusView
	err := s.pool.QueryRow(ctx, `SELECT id, name FROM campuses WHERE id = $1`, id).
		Scan(&view.ID, &view.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campus not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campus", err)
	}
	return &view, nil
}

const campusListCacheKey = "campuses:all"

// CachedCampusReadStore wraps a CampusReadStore with an in-process TTL
// cache. The campus roster changes rarely, so every request hitting the
// database is wasted work.
type CachedCampusReadStore struct {
	inner *CampusReadStore
	cache *gocache.Cache
}

func NewCachedCampusReadStore(inner *CampusReadStore, cache *gocache.Cache) *CachedCampusReadStore {
	return &CachedCampusReadStore{inner: inner, cache: cache}
}

func (s *CachedCampusReadStore) List(ctx context.Context) ([]*queries.CampusView, error) {
	if cached, ok := s.cache.Get(campusListCacheKey); ok {
		return cached.([]*queries.CampusView), nil
	}

	views, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(campusListCacheKey, views)
	return views, nil
}

func (s *CachedCampusReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampusView, error) {
	key := "campus:" + id.String()
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*queries.CampusView), nil
	}

	view, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, view)
	return view, nil
}

// Snapshot adapts the cached read model for the write side.
func (s *CachedCampusReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*commands.CampusSnapshot, error) {
	view, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.CampusSnapshot{ID: view.ID, Name: view.Name}, nil
}

// CampusReaderAdapter exposes a cached store as commands.CampusReader.
type CampusReaderAdapter struct {
	store *CachedCampusReadStore
}

func NewCampusReaderAdapter(store *CachedCampusReadStore) *CampusReaderAdapter {
	return &CampusReaderAdapter{store: store}
}

func (a *CampusReaderAdapter) FindByID(ctx context.Context, id uuid.UUID) (*commands.CampusSnapshot, error) {
	return a.store.Snapshot(ctx, id)
}
