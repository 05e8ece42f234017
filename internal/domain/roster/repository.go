package roster

import "context"

// Source describes the authoritative competition data the use cases read.
type Source interface {
	ListSeasons(ctx context.Context) ([]Season, error)
	ListPeople(ctx context.Context, seasonCode string) ([]Person, error)
	ListClubs(ctx context.Context, seasonCode string) ([]Club, error)
}
