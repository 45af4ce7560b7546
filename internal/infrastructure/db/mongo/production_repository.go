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

const collectionProductions = "productions"

type ProductionRepository struct {
	col *mongo.Collection
}

func NewProductionRepository(db *mongo.Database) *ProductionRepository {
	return &ProductionRepository{col: db.Collection(collectionProductions)}
}

type productionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Genre       string             `bson:"genre,omitempty"`
	Length      *int               `bson:"length,omitempty"`
	Year        *int               `bson:"year,omitempty"`
	Image       string             `bson:"image"`
	Language    string             `bson:"language,omitempty"`
	Director    string             `bson:"director,omitempty"`
	Description string             `bson:"description,omitempty"`
	Composer    string             `bson:"composer,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toProductionDocument(p *domain.Production) productionDocument {
	return productionDocument{
		Title:       p.Title,
		Genre:       p.Genre,
		Length:      copyInt(p.Length),
		Year:        copyInt(p.Year),
		Image:       p.Image,
		Language:    p.Language,
		Director:    p.Director,
		Description: p.Description,
		Composer:    p.Composer,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productionDocument) toDomain() *domain.Production {
	return &domain.Production{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		Length:      d.Length,
		Year:        d.Year,
		Image:       d.Image,
		Language:    d.Language,
		Director:    d.Director,
		Description: d.Description,
		Composer:    d.Composer,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts p and assigns its generated id.
func (r *ProductionRepository) Create(ctx context.Context, p *domain.Production) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toProductionDocument(p)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProductionExists
		}
		return fmt.Errorf("insert production: %w", err)
	}
	p.ID = doc.ID.Hex()
	return nil
}

func (r *ProductionRepository) FindByID(ctx context.Context, id string) (*domain.Production, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrProductionNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ProductionRepository) FindByTitle(ctx context.Context, title string) (*domain.Production, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *ProductionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Production, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productionDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductionNotFound
		}
		return nil, fmt.Errorf("find production: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs returns the productions that exist among ids, in title order.
func (r *ProductionRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Production, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Production{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
}

// List orders by title unless SortByLength asks for longest first. Productions
// without a length sort last in that case.
func (r *ProductionRepository) List(ctx context.Context, f ports.ListProductionsFilter) ([]*domain.Production, error) {
	filter := bson.M{}
	if f.Genre != "" {
		filter["genre"] = f.Genre
	}

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	if f.SortByLength {
		opts.SetSort(bson.D{{Key: "length", Value: -1}, {Key: "title", Value: 1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	return r.find(ctx, filter, opts)
}

func (r *ProductionRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Production, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find productions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []productionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode productions: %w", err)
	}
	out := make([]*domain.Production, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Update replaces the stored document with p.
func (r *ProductionRepository) Update(ctx context.Context, p *domain.Production) error {
	oid, ok := parseID(p.ID)
	if !ok {
		return domain.ErrProductionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toProductionDocument(p)
	doc.ID = oid
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProductionExists
		}
		return fmt.Errorf("replace production: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductionNotFound
	}
	return nil
}

func (r *ProductionRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrProductionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductionNotFound
	}
	return nil
}

// EnsureIndexes makes titles unique and supports the genre and length queries.
func (r *ProductionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "genre", Value: 1}, {Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "length", Value: -1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("production indexes: %w", err)
	}
	return nil
}

var _ ports.ProductionRepository = (*ProductionRepository)(nil)
