package data

type Department struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type Designation struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type Manager struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department,omitempty"`
}

type Role struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}
