package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

const collectionRoles = "roles"

type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

// Production and actor references are kept as hex strings, matching the ids
// the domain hands out.
type roleDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RoleName     string             `bson:"role_name"`
	ProductionID string             `bson:"production_id"`
	ActorID      string             `bson:"actor_id"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d roleDocument) toDomain() *domain.Role {
	return &domain.Role{
		ID:           d.ID.Hex(),
		RoleName:     d.RoleName,
		ProductionID: d.ProductionID,
		ActorID:      d.ActorID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := roleDocument{
		ID:           primitive.NewObjectID(),
		RoleName:     role.RoleName,
		ProductionID: role.ProductionID,
		ActorID:      role.ActorID,
		CreatedAt:    role.CreatedAt,
		UpdatedAt:    role.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	role.ID = doc.ID.Hex()
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roleDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoleRepository) ListByProduction(ctx context.Context, productionID string) ([]*domain.Role, error) {
	return r.find(ctx, bson.M{"production_id": productionID})
}

func (r *RoleRepository) ListByActor(ctx context.Context, actorID string) ([]*domain.Role, error) {
	return r.find(ctx, bson.M{"actor_id": actorID})
}

func (r *RoleRepository) find(ctx context.Context, filter bson.M) ([]*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []roleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	out := make([]*domain.Role, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrRoleNotFound
	}
	n, err := r.deleteMany(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) DeleteByProduction(ctx context.Context, productionID string) (int64, error) {
	return r.deleteMany(ctx, bson.M{"production_id": productionID})
}

func (r *RoleRepository) DeleteByActor(ctx context.Context, actorID string) (int64, error) {
	return r.deleteMany(ctx, bson.M{"actor_id": actorID})
}

func (r *RoleRepository) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete roles: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "production_id", Value: 1}}},
		{Keys: bson.D{{Key: "actor_id", Value: 1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("role indexes: %w", err)
	}
	return nil
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
