package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	conn DBTX
}

type otherRepo struct{}

type UnitOfWorkTestSuite struct {
	suite.Suite
	u *UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.u = NewUnitOfWork(nil)
}

func (s *UnitOfWorkTestSuite) TestRegister() {
	factory := func(conn DBTX) Repository { return &fakeRepo{conn: conn} }

	s.Require().NoError(s.u.Register("fake", factory))
	s.ErrorIs(s.u.Register("fake", factory), ErrRepositoryAlreadyRegistered)
	s.ErrorIs(s.u.Register("nil", nil), ErrNilFactory)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	s.Require().NoError(s.u.Register("fake", func(conn DBTX) Repository { return &fakeRepo{conn: conn} }))

	repo, err := GetRepositoryAs[*fakeRepo](s.u, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, wrongTypeErr := GetRepositoryAs[*otherRepo](s.u, "fake")
	s.ErrorIs(wrongTypeErr, ErrInvalidRepositoryType)

	_, notFoundErr := GetRepositoryAs[*fakeRepo](s.u, "missing")
	s.ErrorIs(notFoundErr, ErrRepositoryNotRegistered)
}

func (s *UnitOfWorkTestSuite) TestTransactionCachesRepositories() {
	var calls int
	repos := map[RepositoryName]RepositoryFactory{
		"fake": func(conn DBTX) Repository {
			calls++
			return &fakeRepo{conn: conn}
		},
	}
	tx := NewTransaction(nil, repos)

	first, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	second, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, calls)

	_, missingErr := tx.Get("missing")
	s.ErrorIs(missingErr, ErrRepositoryNotRegistered)
}
