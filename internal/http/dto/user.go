package dto

import (
	"filmorate/internal/domain/models"
)

// Request
type UserRequest struct {
	ID       *int64  `json:"id"`
	Email    *string `json:"email"`
	Login    *string `json:"login"`
	Name     *string `json:"name"`
	Birthday *string `json:"birthday"`
}

// Response
type UserResponse struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Birthday string  `json:"birthday,omitempty"`
	Friends  []int64 `json:"friends"`
}

// Request → Domain
func UserRequestToDomain(r UserRequest) (models.User, error) {
	birthday, err := parseDate("birthday", r.Birthday)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:       valueOr(r.ID),
		Email:    valueOr(r.Email),
		Login:    valueOr(r.Login),
		Name:     valueOr(r.Name),
		Birthday: birthday,
	}, nil
}

func UserRequestToPatch(r UserRequest) (models.UserPatch, error) {
	birthday, err := parseDate("birthday", r.Birthday)
	if err != nil {
		return models.UserPatch{}, err
	}

	return models.UserPatch{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: birthday,
	}, nil
}

// Domain → Response
func UserResponseFromDomain(u models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: formatDate(u.Birthday),
		Friends:  u.Friends.Sorted(),
	}
}

func UserResponsesFromDomains(users []models.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = UserResponseFromDomain(u)
	}
	return res
}
