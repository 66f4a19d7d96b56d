package models

type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level"`
	Color       string `json:"color,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Codename    string `json:"codename"`
	Module      string `json:"module"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
}

type CreateRoleRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	Level         int      `json:"level"`
	Color         string   `json:"color"`
	PermissionIDs []string `json:"permission_ids,omitempty"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Level       *int   `json:"level,omitempty"`
	Color       string `json:"color,omitempty"`
}

type CreatePermissionRequest struct {
	Name        string `json:"name"`
	Codename    string `json:"codename"`
	Module      string `json:"module"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
}
