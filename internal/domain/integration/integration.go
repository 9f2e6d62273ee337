package integration

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindGLPI      Kind = "glpi"
	KindEvolution Kind = "evolution"
)

// Integration holds one owner's credentials for an external system.
// Rows are created and rotated by the dashboard; the pipelines only read them.
type Integration struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Kind      Kind
	BaseURL   string
	AppToken  string // GLPI
	UserToken string // GLPI
	APIKey    string // Evolution
	Instance  string // Evolution instance name
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
