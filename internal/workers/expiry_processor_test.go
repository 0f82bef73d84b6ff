package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/workers"
	"github.com/pantryhq/pantry-be/test/helpers"
	"github.com/pantryhq/pantry-be/test/mocks"
)

func TestExpiryProcessor_ProcessExpiryScan(t *testing.T) {
	date := func(offset time.Duration) string {
		return time.Now().Add(offset).Format("2006-01-02")
	}

	t.Run("scans_the_full_store_without_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		items := []domain.FoodItem{
			{ID: uuid.New(), Name: "Old Yogurt", Brand: "Fage", ExpiryDate: date(-48 * time.Hour)},
			{ID: uuid.New(), Name: "Milk", Brand: "Acme", ExpiryDate: date(48 * time.Hour)},
			{ID: uuid.New(), Name: "Rice", Brand: "Tilda", ExpiryDate: date(365 * 24 * time.Hour)},
			{ID: uuid.New(), Name: "Mystery Jar", Brand: "Unknown", ExpiryDate: "sometime next year"},
			{ID: uuid.New(), Name: "Salt", Brand: "Maldon"},
		}

		repo := mocks.NewMockFoodRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(items, nil)

		processor := workers.NewExpiryProcessor(repo, helpers.TestLogger())
		err := processor.ProcessExpiryScan(context.Background(), workers.NewExpiryScanTask())

		require.NoError(t, err)
	})

	t.Run("empty_store_is_a_successful_scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockFoodRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		processor := workers.NewExpiryProcessor(repo, helpers.TestLogger())
		err := processor.ProcessExpiryScan(context.Background(), workers.NewExpiryScanTask())

		require.NoError(t, err)
	})

	t.Run("repository_failure_is_returned_for_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockFoodRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		processor := workers.NewExpiryProcessor(repo, helpers.TestLogger())
		err := processor.ProcessExpiryScan(context.Background(), workers.NewExpiryScanTask())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestNewExpiryScanTask(t *testing.T) {
	task := workers.NewExpiryScanTask()

	assert.Equal(t, workers.TypeExpiryScan, task.Type())
	assert.Empty(t, task.Payload())
}
