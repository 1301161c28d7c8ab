package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbites/app/models"
	"quickbites/app/repositories"
	"quickbites/app/services"
)

func newAccountService(t *testing.T) (*services.AccountService, *repositories.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	return services.NewAccountService(users), users
}

func validRegistration() services.RegisterInput {
	return services.RegisterInput{
		Email:    "anna@example.com",
		Password: "supersecret",
		Name:     "Anna",
		Phone:    "+371 20000000",
		Address:  "1 Main St",
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc, users := newAccountService(t)

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)
	require.NotZero(t, id)

	stored, err := users.FindByID(id)
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(validRegistration())
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAccountService(t)

	in := validRegistration()
	in.Password = "short"
	_, err := svc.Register(in)
	assert.ErrorIs(t, err, models.ErrValidation)

	in = validRegistration()
	in.Email = ""
	_, err = svc.Register(in)
	assert.ErrorIs(t, err, models.ErrValidation)

	in = validRegistration()
	in.Name = "  "
	_, err = svc.Register(in)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAccountService(t)

	registeredID, err := svc.Register(validRegistration())
	require.NoError(t, err)

	id, err := svc.Authenticate("anna@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, registeredID, id)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, wrongPw := svc.Authenticate("anna@example.com", "not-the-password")
	_, unknown := svc.Authenticate("nobody@example.com", "supersecret")

	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, wrongPw, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, models.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestProfile(t *testing.T) {
	svc, _ := newAccountService(t)

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)

	user, err := svc.Profile(id)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Equal(t, "Anna", user.Name)

	_, err = svc.Profile(id + 100)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateProfileOmittedFieldsUnchanged(t *testing.T) {
	svc, _ := newAccountService(t)

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)

	newName := "Anna K"
	require.NoError(t, svc.UpdateProfile(id, services.UpdateProfileInput{Name: &newName}))

	user, err := svc.Profile(id)
	require.NoError(t, err)
	assert.Equal(t, "Anna K", user.Name)
	// Omitted fields keep their stored values.
	assert.Equal(t, "+371 20000000", user.Phone)
	assert.Equal(t, "1 Main St", user.Address)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newAccountService(t)

	name := "Ghost"
	err := svc.UpdateProfile(42, services.UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
