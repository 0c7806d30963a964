package dto

type AddTokenRequest struct {
	Token  string `json:"token" binding:"required"`
	UserID string `json:"userId"`
}
