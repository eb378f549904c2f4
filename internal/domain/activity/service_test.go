package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		ActivityType: activity.TypeRecordCreated,
		Summary:      "created",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{Limit: activity.DefaultListLimit}).Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_LogRejectsMissingType(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{}), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
}

func TestActivityService_LogExportSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeRecordsExported && e.Details == `{"format":"csv","count":3}`
	})).Return(errors.New("disk full"))

	svc := activity.NewService(repo, nil)
	svc.LogExport(ctx, "csv", 3)
	repo.AssertExpectations(t)
}
