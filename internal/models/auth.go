package models

// CredentialsSignUp is the credentials registration payload. The
// repeated password must match; the mismatch error belongs to the
// repeat_password field, not the original.
type CredentialsSignUp struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	RepeatPassword string `json:"repeat_password" validate:"required,min=6,eqfield=Password"`
	CPFCNPJ        string `json:"cpf_cnpj" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Role           Role   `json:"role" validate:"required,oneof=ADMIN USER PRODUCER"`
}

type CredentialsSignIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// OAuthRegister completes a profile created through an OAuth provider.
type OAuthRegister struct {
	IDToken string `json:"id_token" validate:"required"`
	Name    string `json:"name" validate:"required"`
	CPFCNPJ string `json:"cpf_cnpj" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Role    Role   `json:"role" validate:"required,oneof=ADMIN USER PRODUCER"`
}
