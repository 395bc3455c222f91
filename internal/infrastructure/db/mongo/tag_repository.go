package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

const tagCollection = "tags"

type MongoTagRepository struct {
	coll *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *MongoTagRepository {
	return &MongoTagRepository{coll: db.Collection(tagCollection)}
}

type mongoTag struct {
	ID        string `bson:"_id"`
	Title     string `bson:"title"`
	Slug      string `bson:"slug,omitempty"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func toMongoTag(t *domain.Tag) mongoTag {
	return mongoTag{
		ID:        t.ID,
		Title:     t.Title,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt.Unix(),
		UpdatedAt: t.UpdatedAt.Unix(),
	}
}

func (m mongoTag) toDomain() domain.Tag {
	return domain.Tag{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		CreatedAt: unixToTime(m.CreatedAt),
		UpdatedAt: unixToTime(m.UpdatedAt),
	}
}

func (r *MongoTagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoTag(tag)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return tag, nil
}

func (r *MongoTagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	var mt mongoTag
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	tag := mt.toDomain()
	return &tag, nil
}

func (r *MongoTagRepository) FindAll(ctx context.Context) ([]domain.Tag, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []domain.Tag
	for cursor.Next(ctx) {
		var mt mongoTag
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tag: %w", err)
		}
		tags = append(tags, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

func (r *MongoTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": tag.ID}, toMongoTag(tag))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoTagRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}
