package pitcher

import "context"

type Repository interface {
	ListByDate(ctx context.Context, date string) ([]StartingPitcher, error)
	ReplaceByDate(ctx context.Context, date string, items []StartingPitcher) error
}
