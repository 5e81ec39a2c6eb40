package usecase

import (
	"context"
	"errors"

	"hospital-food-service/internal/converter"
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/internal/domain/repository"
	"hospital-food-service/internal/service"
	"hospital-food-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role not found")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	sessions     service.SessionStore
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessions:     sessions,
		auditService: auditService,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, error) {
	roleID := entity.RoleIDByName(req.Role)
	if roleID == 0 {
		return nil, ErrInvalidRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		RoleID:   roleID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrInvalidRole
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserSignup, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Audit failures never fail the signup
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	// Unknown email and wrong password produce the same error so login
	// responses don't leak account existence
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := u.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return session, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.sessions.Revoke(ctx, userID, tokenID); err != nil {
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db, &userID, entity.AuditActionUserLogout, "session", tokenID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// LogoutAll revokes every active session the user holds, including the one
// that made the request.
func (u *authUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := u.sessions.RevokeAll(ctx, userID); err != nil {
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db, &userID, entity.AuditActionUserLogoutAll, "session", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// openSession issues a token and records it in the session store so it can
// be revoked on logout.
func (u *authUsecase) openSession(ctx context.Context, user *entity.User) (*dto.SessionResponse, error) {
	role := entity.RoleNameByID(user.RoleID)

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Put(ctx, user.ID, tokenID, u.jwtService.GetTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetTokenExpiry().Seconds()),
		User:      converter.UserToResponse(user),
	}, nil
}
