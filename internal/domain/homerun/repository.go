package homerun

import "context"

type Repository interface {
	ListByDate(ctx context.Context, date string) ([]Event, error)
	ReplaceByDate(ctx context.Context, date string, items []Event) error
}
