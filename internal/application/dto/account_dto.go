package dto

// Formularios de cuenta. Los tags `form` corresponden a los names de los
// inputs HTML; los valores se devuelven tal cual a la vista como sticky fields
// cuando la validación falla.

// RegistrationForm formulario de registro.
type RegistrationForm struct {
	FirstName string `form:"account_firstname"`
	LastName  string `form:"account_lastname"`
	Email     string `form:"account_email"`
	Password  string `form:"account_password"`
}

// LoginForm formulario de inicio de sesión.
type LoginForm struct {
	Email    string `form:"account_email"`
	Password string `form:"account_password"`
}

// UpdateInfoForm edición de datos básicos de la cuenta.
type UpdateInfoForm struct {
	AccountID string `form:"account_id"`
	FirstName string `form:"account_firstname"`
	LastName  string `form:"account_lastname"`
	Email     string `form:"account_email"`
}

// UpdatePasswordForm cambio de password.
type UpdatePasswordForm struct {
	AccountID string `form:"account_id"`
	Password  string `form:"account_password"`
}
