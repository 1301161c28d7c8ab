package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quickbites/app/models"
	"quickbites/app/repositories"
	"quickbites/pkg/auth"
	"quickbites/pkg/event"
)

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so both authentication failure paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Address  string
}

// UpdateProfileInput carries a partial profile update. Nil fields are
// omitted and left unchanged in the store.
type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// AccountService implements registration, credential verification and
// profile read/update.
type AccountService struct {
	users *repositories.UserRepository
}

func NewAccountService(users *repositories.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Register stores a new account with a bcrypt hash of the password and
// returns the new user id. The raw password is never persisted.
func (s *AccountService) Register(in RegisterInput) (uint, error) {
	if err := validateRegister(in); err != nil {
		return 0, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		Name:     in.Name,
		Phone:    in.Phone,
		Address:  in.Address,
	}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, models.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	event.Fire("user.registered", user.ID)
	return user.ID, nil
}

// Authenticate verifies the credentials and returns the user id. Unknown
// email and wrong password both return models.ErrInvalidCredentials.
func (s *AccountService) Authenticate(email, password string) (uint, error) {
	user, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparable amount of time before answering.
			auth.CheckPassword(dummyHash, password)
			return 0, models.ErrInvalidCredentials
		}
		return 0, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return 0, models.ErrInvalidCredentials
	}

	return user.ID, nil
}

// Profile returns the user's account data. The password hash is excluded
// from serialisation by the model.
func (s *AccountService) Profile(userID uint) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", models.ErrNotFound, userID)
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update. Omitted (nil) fields are left
// unchanged; email and password are not mutable through this path.
func (s *AccountService) UpdateProfile(userID uint, in UpdateProfileInput) error {
	if _, err := s.Profile(userID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", models.ErrValidation)
		}
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.users.UpdateFields(userID, fields); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func validateRegister(in RegisterInput) error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	case in.Password == "":
		return fmt.Errorf("%w: password is required", models.ErrValidation)
	case len(in.Password) < 6:
		return fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation)
	}
	return nil
}
