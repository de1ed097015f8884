package request

type CreateUserRequest struct {
	ID      FlexValue `json:"id,omitempty"`
	Name    string    `json:"name" validate:"required"`
	Age     FlexValue `json:"age,omitempty"`
	Country string    `json:"country,omitempty"`
}
