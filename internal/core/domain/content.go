package domain

import "errors"

var ErrServiceNotFound = errors.New("service not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrProjectImageNotFound = errors.New("project image not found")

// Service is a renovation service advertised on the site (plastering,
// gyproc, finishing work, ...). Order controls display position.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

// Project is a completed work shown in the portfolio. ImageURL is the cover;
// the gallery lives in ProjectImage rows.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Order       int    `json:"order"`
}

// ProjectImage is one entry of a project's ordered gallery. Order is a rank
// for carousel display; ranks need not be contiguous.
type ProjectImage struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	ImageURL  string `json:"image_url"`
	Order     int    `json:"order"`
}

// ContactInfo is the single public contact card shown on the site.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
