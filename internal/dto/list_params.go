package dto

// ListParams carries common limit/offset query parameters for list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
