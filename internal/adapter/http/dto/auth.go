package dto

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserItem struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	User  UserItem `json:"user"`
	Token string   `json:"token"`
}
