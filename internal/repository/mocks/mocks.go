package mocks

import (
	"context"

	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/stretchr/testify/mock"
)

// RecordRepository is a mock for record.RecordRepository.
type RecordRepository struct {
	mock.Mock
}

func (m *RecordRepository) Create(ctx context.Context, rec *record.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RecordRepository) Get(ctx context.Context, id string) (*record.Record, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*record.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecordRepository) Update(ctx context.Context, rec *record.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RecordRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]record.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
