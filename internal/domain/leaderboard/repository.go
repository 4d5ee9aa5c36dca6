package leaderboard

import "context"

type Repository interface {
	ListByDate(ctx context.Context, date string) ([]Entry, error)
	ReplaceByDate(ctx context.Context, date string, items []Entry) error
}
