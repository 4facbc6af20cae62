// AngelaMos | 2026
// dto.go

package todo

type TodoRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=3,max=100"`
	Priority    int    `json:"priority"    validate:"gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     int64  `json:"owner_id"`
}

func ToTodoResponse(t *Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
		OwnerID:     t.OwnerID,
	}
}

func ToTodoResponseList(todos []Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, ToTodoResponse(&t))
	}
	return responses
}
