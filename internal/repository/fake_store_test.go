package repository

import "context"

// fakeStore is a function-field DocumentStore for unit tests.
type fakeStore struct {
	findFunc   func(ctx context.Context, collection string, limit int64) ([]Document, error)
	insertFunc func(ctx context.Context, collection string, doc Document) error
}

func (f *fakeStore) Name() string                   { return "fake" }
func (f *fakeStore) Ping(ctx context.Context) error { return nil }
func (f *fakeStore) Close(ctx context.Context) error { return nil }

func (f *fakeStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return []string{ProjectCollection, MessageCollection}, nil
}

func (f *fakeStore) Find(ctx context.Context, collection string, limit int64) ([]Document, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, collection, limit)
	}
	return nil, nil
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc Document) error {
	if f.insertFunc != nil {
		return f.insertFunc(ctx, collection, doc)
	}
	return nil
}
