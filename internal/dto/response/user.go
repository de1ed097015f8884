package response

import "movieflix/internal/data/entity"

type UserResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     string `json:"age"`
	Country string `json:"country"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Age:     user.Age,
		Country: user.Country,
	}
}
