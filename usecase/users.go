package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"suapa/config"
	"suapa/dto"
	"suapa/model"
	"suapa/repository"
	"suapa/services"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTwoFactorRequired  = errors.New("two-factor code required")
	ErrInvalidTwoFactor   = errors.New("invalid two-factor code")
	ErrInvalidGoogleToken = errors.New("invalid Google ID token")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	Repo   *repository.UserRepo
	Admin  config.AdminConfig
	Google config.GoogleConfig
}

func NewUserService(repo *repository.UserRepo, admin config.AdminConfig, google config.GoogleConfig) *UserService {
	return &UserService{Repo: repo, Admin: admin, Google: google}
}

// roleFor assigns admin to the configured admin account, user to everyone
// else.
func (s *UserService) roleFor(email string) string {
	if strings.EqualFold(email, s.Admin.AdminEmail) {
		return model.RoleAdmin
	}
	return model.RoleUser
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(req.Email)

	existing, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		UserID:      uuid.NewString(),
		DisplayName: req.DisplayName,
		Email:       email,
		Password:    hash,
		Role:        s.roleFor(email),
		Provider:    "password",
		CreatedAt:   now,
		LastLogin:   now,
	}
	if err := s.Repo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and, when the account has 2FA enabled,
// the TOTP code.
func (s *UserService) Authenticate(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted || user.Password == "" {
		return nil, ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			return user, ErrTwoFactorRequired
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			return nil, ErrInvalidTwoFactor
		}
	}

	return user, nil
}

// GoogleSignIn verifies the ID token and returns the matching profile,
// creating or linking it on first sign-in.
func (s *UserService) GoogleSignIn(ctx context.Context, idToken string) (*model.User, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{s.Google.ClientID}); err != nil {
		return nil, ErrInvalidGoogleToken
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	email := strings.ToLower(claims.Email)

	user, err := s.Repo.FindUserByGoogleID(ctx, claims.Sub)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// Existing password account with the same email gets linked.
	user, err = s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := s.Repo.UpdateUser(ctx, user.UserID, bson.M{"google_id": claims.Sub}); err != nil {
			return nil, err
		}
		user.GoogleID = claims.Sub
		return user, nil
	}

	now := time.Now()
	user = &model.User{
		UserID:      uuid.NewString(),
		DisplayName: claims.Name,
		Email:       email,
		Role:        s.roleFor(email),
		Provider:    "google",
		GoogleID:    claims.Sub,
		CreatedAt:   now,
		LastLogin:   now,
	}
	if err := s.Repo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Admin operations

func (s *UserService) ListUsers(ctx context.Context, q repository.ListUsersQuery) ([]*model.User, int64, error) {
	return s.Repo.ListUsers(ctx, q)
}

func (s *UserService) AddUser(ctx context.Context, req dto.AddUserRequest) (*model.User, error) {
	user, err := s.Register(ctx, dto.RegisterRequest{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return nil, err
	}
	if req.Role != "" && req.Role != user.Role {
		if err := s.Repo.UpdateUser(ctx, user.UserID, bson.M{"role": req.Role}); err != nil {
			return nil, err
		}
		user.Role = req.Role
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) error {
	set := bson.M{}
	if req.DisplayName != "" {
		set["display_name"] = req.DisplayName
	}
	if req.Role != "" {
		set["role"] = req.Role
	}
	if len(set) == 0 {
		return nil
	}
	return s.Repo.UpdateUser(ctx, userID, set)
}

func (s *UserService) SoftDeleteUser(ctx context.Context, userID string) error {
	return s.Repo.SoftDeleteUser(ctx, userID)
}

func (s *UserService) SyncProfiles(ctx context.Context) (int, error) {
	return s.Repo.SyncProfiles(ctx, s.Admin.AdminEmail)
}

func (s *UserService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	total, err := s.Repo.CountUsers(ctx, bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	admins, err := s.Repo.CountUsers(ctx, bson.M{"role": model.RoleAdmin, "deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	newThisWeek, err := s.Repo.CountUsers(ctx, bson.M{"created_at": bson.M{"$gte": weekAgo}, "deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	deleted, err := s.Repo.CountUsers(ctx, bson.M{"deleted": true})
	if err != nil {
		return nil, err
	}

	return &model.AdminStats{
		TotalUsers:   total,
		AdminUsers:   admins,
		NewThisWeek:  newThisWeek,
		DeletedUsers: deleted,
	}, nil
}
