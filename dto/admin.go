package dto

type AddUserRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,password"`
	Role        string `json:"role" binding:"omitempty,oneof=user admin"`
}

type UpdateUserRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}
