package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by the login flow. Exactly one of Token and
// ChallengeToken is set.
type LoginResult struct {
	User           User   `json:"-"`
	Token          Token  `json:"-"`
	OTPRequired    bool   `json:"otp_required"`
	ChallengeToken string `json:"challenge_token,omitempty"`
}

// LoginOTPRequest is the body of POST /api/user/login/otp.
type LoginOTPRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Code           string `json:"code"`
}

// OTPRequest is the body of POST /api/user/otp/request.
type OTPRequest struct {
	Type    OTPType    `json:"type"`
	Purpose OTPPurpose `json:"purpose"`
}

// OTPVerifyRequest is the body of POST /api/user/otp/verify.
type OTPVerifyRequest struct {
	Code    string     `json:"code"`
	Purpose OTPPurpose `json:"purpose"`
}

// TwoFactorRequest is the body of PUT /api/user/2fa.
type TwoFactorRequest struct {
	Enabled  bool   `json:"enabled"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of PUT /api/user/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PasswordResetRequest is the body of POST /api/user/password/reset.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest is the body of POST /api/user/password/reset/confirm.
type PasswordResetConfirmRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// RotateKeyRequest is the body of POST /api/user/keys/rotate.
type RotateKeyRequest struct {
	Password string `json:"password"`
}

// SignRequest is the body of POST /api/user/keys/sign. Payload is signed
// as-is with RSA-PSS over SHA-256.
type SignRequest struct {
	Password string `json:"password"`
	Payload  string `json:"payload"`
}

// SignResponse carries a base64 signature and the key that produced it.
type SignResponse struct {
	Signature string `json:"signature"`
	KeyID     int64  `json:"key_id"`
	PublicKey string `json:"public_key"`
}

// MaxAuthorizationDays caps expires_in_days of a service grant.
const MaxAuthorizationDays = 3650

// AuthorizeServiceRequest is the body of
// POST /api/user/services/{serviceID}/authorizations.
type AuthorizeServiceRequest struct {
	Scopes        []string `json:"scopes"`
	ExpiresInDays int      `json:"expires_in_days"`
}

// VerifyIdentityRequest is the body of POST /api/partner/verify-identity.
type VerifyIdentityRequest struct {
	UserUUID string `json:"user_uuid"`
}

// VerifyIdentityResponse is the partner-facing identity confirmation.
type VerifyIdentityResponse struct {
	Verified bool   `json:"verified"`
	UserUUID string `json:"user_uuid"`
}

// CheckAuthorizationRequest is the body of POST /api/partner/check-authorization.
type CheckAuthorizationRequest struct {
	UserUUID  string `json:"user_uuid"`
	ServiceID int64  `json:"service_id"`
}

// CreatePartnerRequest is the body of POST /api/admin/partners.
type CreatePartnerRequest struct {
	Name string `json:"name"`
}

// PartnerStatusRequest is the body of PUT /api/admin/partners/{partnerID}/status.
type PartnerStatusRequest struct {
	Status PartnerStatus `json:"status"`
}

// CreateServiceRequest is the body of POST /api/admin/partners/{partnerID}/services.
type CreateServiceRequest struct {
	Name           string   `json:"name"`
	RequiredScopes []string `json:"required_scopes"`
}

// EmergencyTokenResponse returns a freshly issued emergency token. The token
// is shown exactly once.
type EmergencyTokenResponse struct {
	Token    string `json:"token"`
	UserUUID string `json:"user_uuid"`
}

// SaveEmergencyProfileRequest is the body of PUT /api/user/emergency/profile.
type SaveEmergencyProfileRequest struct {
	MedicalInfo        JSONMap             `json:"medical_info"`
	EmergencyDocuments []EmergencyDocument `json:"emergency_documents"`
}

// PublicKeyResponse is the partner-facing view of a user's active key.
type PublicKeyResponse struct {
	UserUUID  string `json:"user_uuid"`
	KeyID     int64  `json:"key_id"`
	PublicKey string `json:"public_key"`
	Algorithm string `json:"algorithm"`
}

// PartnerAuthRequest carries the parts of an inbound request covered by the
// partner signature.
type PartnerAuthRequest struct {
	APIKey    string
	Signature string
	Timestamp string
	Method    string
	Path      string
	Body      []byte
}
