package response

import "github.com/ktsk/conduit/domain"

// UserResp represent the authenticated user, token included.
type UserResp struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

type UserEnvelope struct {
	User UserResp `json:"user"`
}

func NewUserEnvelope(u domain.User, token string) UserEnvelope {
	return UserEnvelope{
		User: UserResp{
			Username: u.Username,
			Email:    u.Email,
			Bio:      u.Bio,
			Image:    u.Image,
			Token:    token,
		},
	}
}
