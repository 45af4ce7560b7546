package domain

import "time"

// Role casts one actor in one production. Roles are the join through which
// a production's actors and an actor's productions are derived.
type Role struct {
	ID           string    `json:"id"`
	RoleName     string    `json:"role_name"`
	ProductionID string    `json:"production_id"`
	ActorID      string    `json:"actor_id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// NewRole validates the role fields. Whether the referenced production and
// actor exist is checked by the caller against storage.
func NewRole(roleName, productionID, actorID string, now time.Time) (*Role, error) {
	name, err := validateRequired("role_name", roleName)
	if err != nil {
		return nil, err
	}
	if _, err := validateRequired("production_id", productionID); err != nil {
		return nil, err
	}
	if _, err := validateRequired("actor_id", actorID); err != nil {
		return nil, err
	}
	return &Role{
		RoleName:     name,
		ProductionID: productionID,
		ActorID:      actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
