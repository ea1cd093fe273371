package dto

import "time"

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type LoginUserCommand struct {
	Email    string
	Password string
}

type UserResource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginUserOutput struct {
	Token string       `json:"token"`
	User  UserResource `json:"user"`
}
