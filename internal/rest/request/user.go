package request

// RegisterUserReq is the wrapped body for registering a new user.
type RegisterUserReq struct {
	User RegisterUserFields `json:"user" binding:"required"`
}

type RegisterUserFields struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginUserReq is the wrapped body for logging in.
type LoginUserReq struct {
	User LoginUserFields `json:"user" binding:"required"`
}

type LoginUserFields struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserReq carries a partial profile update; absent fields keep their
// value.
type UpdateUserReq struct {
	User UpdateUserFields `json:"user" binding:"required"`
}

type UpdateUserFields struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}
