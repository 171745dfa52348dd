package handler

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here so swagger annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}

type createServiceRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

type updateServiceRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

type createProjectRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Order       int    `json:"order"`
}

type updateProjectRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Order       *int    `json:"order"`
}

type createProjectImageRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	ImageURL  string `json:"image_url" validate:"required"`
	Order     int    `json:"order"`
}

type updateContactInfoRequest struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type createMessageRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=64"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=20000"`
}

type createTestimonialRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Title       string `json:"title" validate:"max=255"`
	ProjectType string `json:"project_type" validate:"max=255"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Testimonial string `json:"testimonial" validate:"required,max=20000"`
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}
