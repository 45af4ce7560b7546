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

const collectionActors = "actors"

type ActorRepository struct {
	col *mongo.Collection
}

func NewActorRepository(db *mongo.Database) *ActorRepository {
	return &ActorRepository{col: db.Collection(collectionActors)}
}

type actorDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Image     string             `bson:"image"`
	Age       *int               `bson:"age,omitempty"`
	Country   string             `bson:"country,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toActorDocument(a *domain.Actor) actorDocument {
	return actorDocument{
		Name:      a.Name,
		Image:     a.Image,
		Age:       copyInt(a.Age),
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (d actorDocument) toDomain() *domain.Actor {
	return &domain.Actor{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Image:     d.Image,
		Age:       d.Age,
		Country:   d.Country,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ActorRepository) Create(ctx context.Context, a *domain.Actor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toActorDocument(a)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrActorExists
		}
		return fmt.Errorf("insert actor: %w", err)
	}
	a.ID = doc.ID.Hex()
	return nil
}

func (r *ActorRepository) FindByID(ctx context.Context, id string) (*domain.Actor, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrActorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc actorDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActorRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Actor, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Actor{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// List returns every actor ordered by name.
func (r *ActorRepository) List(ctx context.Context) ([]*domain.Actor, error) {
	return r.find(ctx, bson.M{})
}

func (r *ActorRepository) find(ctx context.Context, filter bson.M) ([]*domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find actors: %w", err)
	}
	defer cur.Close(ctx)

	var docs []actorDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode actors: %w", err)
	}
	out := make([]*domain.Actor, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ActorRepository) Update(ctx context.Context, a *domain.Actor) error {
	oid, ok := parseID(a.ID)
	if !ok {
		return domain.ErrActorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toActorDocument(a)
	doc.ID = oid
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrActorExists
		}
		return fmt.Errorf("replace actor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

func (r *ActorRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrActorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

func (r *ActorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("actor indexes: %w", err)
	}
	return nil
}

var _ ports.ActorRepository = (*ActorRepository)(nil)
