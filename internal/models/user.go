package models

type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FarmaciaID int    `json:"farmaciaId,omitempty"`
}
