package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/services"
	"github.com/vytor/lecturedeck/internal/testutil/mocks"
)

func TestTranscriptService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTranscriptRepository)
	svc := services.NewTranscriptService(repo)

	repo.On("Insert", ctx, mock.MatchedBy(func(tr models.Transcript) bool {
		return tr.StudentID == 3 && tr.Text == "Mitochondria make ATP." && tr.Title != ""
	})).Return(int64(12), nil)

	got, err := svc.Create(ctx, 3, "  ", "  Mitochondria make ATP.\n")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Contains(t, got.Title, "Transcript ")
	repo.AssertExpectations(t)
}

func TestTranscriptService_CreateBlankText(t *testing.T) {
	repo := new(mocks.MockTranscriptRepository)
	svc := services.NewTranscriptService(repo)

	_, err := svc.Create(context.Background(), 3, "title", " \t ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestTranscriptService_CreateFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTranscriptRepository)
	svc := services.NewTranscriptService(repo)

	repo.On("Insert", ctx, mock.Anything).Return(int64(0), stderrors.New("disk"))

	_, err := svc.Create(ctx, 3, "t", "text")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
}
