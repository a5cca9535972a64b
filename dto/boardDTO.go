package dto

type CreateBoardRequest struct {
	Name  string `json:"name" binding:"required"`
	Owner string `json:"owner" binding:"required"`
}

type UpdateBoardRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type AddListRequest struct {
	Title string `json:"title" binding:"required"`
}

type AddCardRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	AssignedUsers []string `json:"assignedUsers"`
}
