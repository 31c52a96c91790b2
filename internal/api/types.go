package api

import "github.com/aferro/curator/internal/resource"

// Photo mirrors a record from /api/photos/.
type Photo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	CreatedAt   string `json:"created_at"`
}

// Video mirrors a record from /api/videos/.
type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Video       string `json:"video"`
	CreatedAt   string `json:"created_at"`
}

// Service status values.
const (
	ServiceActive   = "active"
	ServiceInactive = "inactive"
)

// Service mirrors a record from /api/services/.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Contact status values.
const (
	ContactUnread = "unread"
	ContactRead   = "read"
)

// Contact mirrors a record from /api/contacts/.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Adapters describing each kind to the generic controller. Search fields
// follow the management screens: title/description for media and
// services, name/email/subject for contacts.

type PhotoAdapter struct{}

func (PhotoAdapter) Kind() string                { return "photos" }
func (PhotoAdapter) ID(p Photo) resource.ID      { return resource.ID(p.ID) }
func (PhotoAdapter) SearchText(p Photo) []string { return []string{p.Title, p.Description} }

type VideoAdapter struct{}

func (VideoAdapter) Kind() string                { return "videos" }
func (VideoAdapter) ID(v Video) resource.ID      { return resource.ID(v.ID) }
func (VideoAdapter) SearchText(v Video) []string { return []string{v.Title, v.Description} }

type ServiceAdapter struct{}

func (ServiceAdapter) Kind() string                  { return "services" }
func (ServiceAdapter) ID(s Service) resource.ID      { return resource.ID(s.ID) }
func (ServiceAdapter) SearchText(s Service) []string { return []string{s.Title, s.Description} }

type ContactAdapter struct{}

func (ContactAdapter) Kind() string             { return "contacts" }
func (ContactAdapter) ID(c Contact) resource.ID { return resource.ID(c.ID) }
func (ContactAdapter) SearchText(c Contact) []string {
	return []string{c.Name, c.Email, c.Subject}
}

// Validation rules per kind. The asset field is mandatory on create and
// optional on update; contacts have no form at all.

func PhotoRules() resource.Rules {
	return resource.Rules{Required: []string{"title"}, AssetField: "photo"}
}

func VideoRules() resource.Rules {
	return resource.Rules{Required: []string{"title"}, AssetField: "video"}
}

func ServiceRules() resource.Rules {
	return resource.Rules{Required: []string{"title"}, AssetField: "file"}
}

func ContactRules() resource.Rules {
	return resource.Rules{}
}
