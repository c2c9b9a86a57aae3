package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service/tokens"
	"github.com/fsdevblog/storefront/pkg/uow"
)

type CustomerService struct {
	uow            uow.UOW
	customerRepo   CustomerRepository
	tokenRepo      TokenRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewCustomerService(u uow.UOW, hasher PasswordHasher, jwtTokenSecret []byte) (*CustomerService, error) {
	customerRepo, customerRepoErr :=
		uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if customerRepoErr != nil {
		return nil, customerRepoErr
	}
	tokenRepo, tokenRepoErr := uow.GetRepositoryAs[TokenRepository](u, uow.RepositoryName(repoargs.TokenRepoName))
	if tokenRepoErr != nil {
		return nil, tokenRepoErr
	}
	return &CustomerService{
		uow:            u,
		customerRepo:   customerRepo,
		tokenRepo:      tokenRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterCustomerArgs struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register создает покупателя и выдает ему пару токенов. Если email уже занят, вернется domain.ErrDuplicateKey.
func (s *CustomerService) Register(
	ctx context.Context,
	args RegisterCustomerArgs,
) (*domain.Customer, *tokens.Pair, error) {
	hash, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, nil, fmt.Errorf("registering customer: %s", hashErr.Error())
	}

	customer, createErr := s.customerRepo.Create(ctx, repoargs.CreateCustomer{
		Name:         strings.TrimSpace(args.Name),
		Email:        normalizeEmail(args.Email),
		Phone:        args.Phone,
		PasswordHash: hash,
		Role:         domain.CustomerRoleCustomer,
	})
	if createErr != nil {
		return nil, nil, fmt.Errorf("registering customer: %w", createErr)
	}

	pair, pairErr := tokens.GeneratePair(customer.ID, string(customer.Role), s.jwtTokenSecret)
	if pairErr != nil {
		return nil, nil, fmt.Errorf("registering customer: %w", pairErr)
	}
	return customer, pair, nil
}

// Login проверяет email и пароль. Неизвестный email и неверный пароль неразличимы: оба дают
// domain.ErrPasswordMissMatch.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*domain.Customer, *tokens.Pair, error) {
	customer, findErr := s.customerRepo.FindByEmail(ctx, normalizeEmail(email))
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, nil, domain.ErrPasswordMissMatch
		}
		return nil, nil, fmt.Errorf("login: %w", findErr)
	}
	if !s.hasher.ComparePassword(password, customer.PasswordHash) {
		return nil, nil, domain.ErrPasswordMissMatch
	}
	if customer.Status == domain.CustomerStatusSuspended {
		return nil, nil, domain.ErrAccountSuspended
	}

	pair, pairErr := tokens.GeneratePair(customer.ID, string(customer.Role), s.jwtTokenSecret)
	if pairErr != nil {
		return nil, nil, fmt.Errorf("login: %w", pairErr)
	}
	return customer, pair, nil
}

// Refresh ротирует refresh токен: старый отзывается, выдается новая пара. Отозванный токен повторно
// использовать нельзя.
func (s *CustomerService) Refresh(ctx context.Context, refreshToken string) (*tokens.Pair, error) {
	claims, claimsErr := s.parseRefresh(refreshToken)
	if claimsErr != nil {
		return nil, claimsErr
	}

	var pair *tokens.Pair
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tokenRepo, tokenRepoErr := uow.GetAs[TokenRepository](tx, uow.RepositoryName(repoargs.TokenRepoName))
		if tokenRepoErr != nil {
			return tokenRepoErr //nolint:wrapcheck
		}
		customerRepo, customerRepoErr :=
			uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if customerRepoErr != nil {
			return customerRepoErr //nolint:wrapcheck
		}

		if err := s.revoke(c, tokenRepo, claims); err != nil {
			return err
		}

		customer, findErr := customerRepo.FindByID(c, claims.ID)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.ErrInvalidToken
			}
			return findErr //nolint:wrapcheck
		}
		if customer.Status == domain.CustomerStatusSuspended {
			return domain.ErrAccountSuspended
		}

		var pairErr error
		pair, pairErr = tokens.GeneratePair(customer.ID, string(customer.Role), s.jwtTokenSecret)
		return pairErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("refreshing tokens: %w", txErr)
	}
	return pair, nil
}

// Logout отзывает refresh токен покупателя customerID.
func (s *CustomerService) Logout(ctx context.Context, customerID int64, refreshToken string) error {
	claims, claimsErr := s.parseRefresh(refreshToken)
	if claimsErr != nil {
		return claimsErr
	}
	if claims.ID != customerID {
		return domain.ErrForbidden
	}
	if err := s.revoke(ctx, s.tokenRepo, claims); err != nil {
		if errors.Is(err, domain.ErrTokenRevoked) {
			return nil
		}
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *CustomerService) parseRefresh(refreshToken string) (*tokens.CustomerClaims, error) {
	claims, err := tokens.ValidateCustomerJWT(refreshToken, tokens.RefreshToken, s.jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, err.Error())
	}
	return claims, nil
}

func (s *CustomerService) revoke(ctx context.Context, repo TokenRepository, claims *tokens.CustomerClaims) error {
	jti, jtiErr := claims.JTI()
	if jtiErr != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidToken, jtiErr.Error())
	}
	revoked, err := repo.Revoke(ctx, jti, claims.ExpiresAt.Time)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !revoked {
		return domain.ErrTokenRevoked
	}
	return nil
}

// PurgeRevokedTokens чистит истекшие записи об отозванных токенах.
func (s *CustomerService) PurgeRevokedTokens(ctx context.Context) (int64, error) {
	n, err := s.tokenRepo.PurgeExpired(ctx)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return n, nil
}

// EnsureAdmin создает администратора с указанными email и паролем, если его еще нет. Существующему
// покупателю с таким email выдается роль администратора, пароль не меняется.
func (s *CustomerService) EnsureAdmin(ctx context.Context, email, password string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	existing, findErr := s.customerRepo.FindByEmail(ctx, email)
	if findErr == nil {
		if existing.IsAdmin() {
			return existing, nil
		}
		role := domain.CustomerRoleAdmin
		updated, updErr := s.customerRepo.Update(ctx, existing.ID, repoargs.UpdateCustomer{Role: &role})
		if updErr != nil {
			return nil, fmt.Errorf("promoting admin %s: %w", email, updErr)
		}
		return updated, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("ensuring admin %s: %w", email, findErr)
	}

	hash, hashErr := s.hasher.HashPassword(password)
	if hashErr != nil {
		return nil, fmt.Errorf("ensuring admin %s: %s", email, hashErr.Error())
	}
	admin, createErr := s.customerRepo.Create(ctx, repoargs.CreateCustomer{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.CustomerRoleAdmin,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating admin %s: %w", email, createErr)
	}
	return admin, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}

func (s *CustomerService) List(
	ctx context.Context,
	filter repoargs.CustomerFilter,
) ([]domain.CustomerWithStats, error) {
	customers, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customers, nil
}

func (s *CustomerService) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateCustomer,
) (*domain.Customer, error) {
	if args.Role != nil && !args.Role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}
	if args.Status != nil && !args.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	customer, err := s.customerRepo.Update(ctx, id, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id) //nolint:wrapcheck
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
