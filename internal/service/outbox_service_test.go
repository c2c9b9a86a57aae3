package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	uowmocks "github.com/fsdevblog/storefront/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OutboxServiceTestSuite struct {
	suite.Suite
	repos         *mockRepos
	outboxService *OutboxService
}

func TestOutboxServiceSuite(t *testing.T) {
	suite.Run(t, new(OutboxServiceTestSuite))
}

func (s *OutboxServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.repos = newMockRepos(ctrl)

	mockUOW := uowmocks.NewMockUOW(ctrl)
	expectUOW(mockUOW, uowmocks.NewMockTX(ctrl), s.repos)

	outboxService, err := NewOutboxService(mockUOW)
	s.Require().NoError(err)
	s.outboxService = outboxService
}

func (s *OutboxServiceTestSuite) TestCompleteDelivery() {
	s.repos.outbox.EXPECT().MarkSent(gomock.Any(), []int64{1, 3}).Return(nil)
	s.repos.outbox.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), OutboxMaxAttempts, gomock.Any()).
		Do(func(_ context.Context, failures []repoargs.FailedDelivery, _ int32, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(failures, 1)
			s.Equal(int64(2), failures[0].ID)
			s.Equal("smtp down", failures[0].Error)
			s.Equal(time.Minute, failures[0].RetryAfter)
			fn(0, nil)
		})

	err := s.outboxService.CompleteDelivery(s.T().Context(), []DeliveryResult{
		{EventID: 1},
		{EventID: 2, Error: errors.New("smtp down"), RetryAfter: time.Minute},
		{EventID: 3},
	})
	s.Require().NoError(err)
}

func (s *OutboxServiceTestSuite) TestCompleteDeliveryBatchError() {
	s.repos.outbox.EXPECT().MarkSent(gomock.Any(), []int64{}).Return(nil)
	s.repos.outbox.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), OutboxMaxAttempts, gomock.Any()).
		Do(func(_ context.Context, _ []repoargs.FailedDelivery, _ int32, fn repoargs.BatchExecQueryRow) {
			fn(0, errors.New("db gone"))
		})

	err := s.outboxService.CompleteDelivery(s.T().Context(), []DeliveryResult{
		{EventID: 2, Error: errors.New("timeout")},
	})
	s.Require().Error(err)
}
