package repository

import (
	"context"

	"github.com/google/uuid"

	"opsboard/internal/domain/integration"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/pgconv"
)

const queryActiveIntegration = `
SELECT id, owner_id, kind, base_url, app_token, user_token, api_key, instance,
       is_active, created_at, updated_at
FROM integrations
WHERE owner_id = $1 AND kind = $2 AND is_active = true
LIMIT 1`

// IntegrationRepository resolves per-owner external-system credentials.
// Read-only here: rows are managed by the dashboard.
type IntegrationRepository struct {
	db DB
}

func NewIntegrationRepository(db DB) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

func (r *IntegrationRepository) FindActive(ctx context.Context, ownerID uuid.UUID, kind integration.Kind) (*integration.Integration, error) {
	var in integration.Integration
	var k string
	err := r.db.QueryRow(ctx, queryActiveIntegration, ownerID, string(kind)).Scan(
		&in.ID, &in.OwnerID, &k, &in.BaseURL, &in.AppToken, &in.UserToken,
		&in.APIKey, &in.Instance, &in.IsActive, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("integration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get integration", err)
	}
	in.Kind = integration.Kind(k)
	return &in, nil
}
