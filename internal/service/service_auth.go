package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT token
// lifecycle. Passwords are stored as bcrypt hashes; refresh tokens are
// tracked server-side by their JTI so they can be rotated and revoked.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository is the refresh token ledger used for rotation and
	// revocation.
	tokenRepository store.TokenRepository

	// roleRepository resolves the seeded permission group of a user type.
	roleRepository store.RoleRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessLifetime and refreshLifetime control how long the two token
	// kinds remain valid.
	accessLifetime  time.Duration
	refreshLifetime time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, roleRepository store.RoleRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		roleRepository:  roleRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessLifetime:  cfg.AccessTokenLifetime,
		refreshLifetime: cfg.RefreshTokenLifetime,
		logger:          logger,
	}
}

// RegisterCustomer creates a customer account. Customers are active
// immediately and can log in right after registering.
func (a *authService) RegisterCustomer(ctx context.Context, registration models.Registration) (models.User, error) {
	return a.register(ctx, registration, models.UserTypeCustomer, true)
}

// RegisterOwner creates an owner account. Owner registrations start inactive
// and stay locked out until a master admin approves them.
func (a *authService) RegisterOwner(ctx context.Context, registration models.Registration) (models.User, error) {
	return a.register(ctx, registration, models.UserTypeOwner, false)
}

// register validates the shared registration payload, hashes the password and
// persists the account with the given role and activation state.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email, mobile number or password is missing.
//   - ErrPasswordsDoNotMatch if the confirmation does not match.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) register(ctx context.Context, registration models.Registration, userType models.UserType, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if registration.Email == "" || registration.MobileNumber == "" || registration.Password == "" {
		log.Error().
			Str("email", registration.Email).
			Str("mobile_number", registration.MobileNumber).
			Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if registration.Password != registration.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	hash, err := utils.HashPassword(registration.Password)
	if err != nil {
		log.Err(err).Str("email", registration.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:            registration.Email,
		MobileNumber:     registration.MobileNumber,
		EmergencyContact: registration.EmergencyContact,
		FirstName:        registration.FirstName,
		MiddleName:       registration.MiddleName,
		LastName:         registration.LastName,
		Gender:           registration.Gender,
		Category:         registration.Category,
		UserType:         userType,
		Address:          registration.Address,
		City:             registration.City,
		OrderTypes:       registration.OrderTypes,
		Skills:           registration.Skills,
		IsActive:         active,
		PasswordHash:     hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).
			Str("email", user.Email).
			Str("user_type", string(userType)).
			Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an account by email or mobile number and issues a fresh
// token pair.
//
// Returns the account and its tokens, or:
//   - ErrInvalidDataProvided if identifier or password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is
//     wrong. The two cases are deliberately indistinguishable.
//   - ErrAccountPendingApproval if the account exists but is not active yet.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if credentials.Identifier == "" || credentials.Password == "" {
		log.Error().Msg("empty login credentials provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByIdentifier(ctx, credentials.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("identifier", credentials.Identifier).Msg("user search by identifier failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, credentials.Password) {
		log.Error().
			Int64("user_id", user.UserID).
			Str("identifier", credentials.Identifier).
			Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Int64("user_id", user.UserID).Msg("login attempt on pending account")
		return models.User{}, models.TokenPair{}, ErrAccountPendingApproval
	}

	pair, err := a.issueTokenPair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return user, pair, nil
}

// Refresh trades a valid refresh token for a new pair. Tokens are rotated:
// the presented token is revoked before the replacement is issued, so a
// refresh token can be redeemed at most once.
//
// Returns ErrTokenIsExpiredOrInvalid when the token fails validation, was
// never issued by this server, or has already been rotated or revoked, and
// ErrAccountPendingApproval when the account was deactivated in the meantime.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := a.parseRefreshToken(refreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}

	record, err := a.tokenRepository.Get(ctx, token.Claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("jti", token.Claims.ID).Msg("refresh token lookup failed")
		return models.TokenPair{}, fmt.Errorf("refresh token lookup failed: %w", err)
	}

	if !record.Active(time.Now()) {
		log.Warn().
			Int64("user_id", record.UserID).
			Str("jti", record.JTI).
			Msg("attempt to redeem a revoked or expired refresh token")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("user_id", record.UserID).Msg("user lookup during refresh failed")
		return models.TokenPair{}, fmt.Errorf("user lookup during refresh failed: %w", err)
	}
	if !user.IsActive {
		return models.TokenPair{}, ErrAccountPendingApproval
	}

	if err := a.tokenRepository.Revoke(ctx, record.JTI); err != nil {
		log.Err(err).Str("jti", record.JTI).Msg("revoking rotated refresh token failed")
		return models.TokenPair{}, fmt.Errorf("revoking rotated refresh token failed: %w", err)
	}

	return a.issueTokenPair(ctx, user)
}

// Logout revokes the presented refresh token. The matching access token stays
// technically valid until it expires; its short lifetime bounds the exposure.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	token, err := a.parseRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	if err := a.tokenRepository.Revoke(ctx, token.Claims.ID); err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("jti", token.Claims.ID).Msg("revoking refresh token failed")
		return fmt.Errorf("revoking refresh token failed: %w", err)
	}

	return nil
}

// ChangePassword verifies the caller's current password, stores the bcrypt
// hash of the new one and revokes every outstanding refresh token of the
// account, forcing all sessions to re-authenticate.
func (a *authService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	if change.OldPassword == "" || change.NewPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for password change failed")
		return fmt.Errorf("user lookup for password change failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, change.OldPassword) {
		log.Error().Int64("user_id", userID).Msg("current password did not match")
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(change.NewPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	if err := a.tokenRepository.RevokeAllForUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("revoking sessions after password change failed")
		return fmt.Errorf("revoking sessions after password change failed: %w", err)
	}

	return nil
}

// ParseAccessToken validates and parses a raw JWT string and requires the
// access token kind.
//
// Any validation failure (expired, wrong issuer, wrong kind, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.TokenType != models.TokenTypeAccess {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// HasPermission reports whether the seeded role of the given user type
// carries the permission identified by action and resource. An unseeded role
// holds no permissions.
func (a *authService) HasPermission(ctx context.Context, userType models.UserType, action, resource string) (bool, error) {
	log := logger.FromContext(ctx)

	role, err := a.roleRepository.GetRoleByName(ctx, string(userType))
	if err != nil {
		if errors.Is(err, store.ErrRoleNotFound) {
			return false, nil
		}
		log.Err(err).Str("role", string(userType)).Msg("role lookup failed")
		return false, fmt.Errorf("role lookup failed: %w", err)
	}

	return role.Allows(action, resource), nil
}

// issueTokenPair mints an access and refresh token for the user and persists
// the refresh token's JTI in the server-side ledger.
func (a *authService) issueTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	access, refresh, err := utils.GenerateTokenPair(a.tokenIssuer, user.UserID, user.UserType, a.accessLifetime, a.refreshLifetime, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token pair generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	record := models.RefreshToken{
		JTI:       refresh.Claims.ID,
		UserID:    user.UserID,
		IssuedAt:  refresh.Claims.IssuedAt.Time,
		ExpiresAt: refresh.Claims.ExpiresAt.Time,
	}
	if err := a.tokenRepository.Save(ctx, record); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("saving refresh token record failed")
		return models.TokenPair{}, fmt.Errorf("saving refresh token record failed: %w", err)
	}

	return models.TokenPair{Access: access.String(), Refresh: refresh.String()}, nil
}

// parseRefreshToken validates a raw JWT string and requires the refresh token
// kind. Failures are normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) parseRefreshToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.TokenType != models.TokenTypeRefresh {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
