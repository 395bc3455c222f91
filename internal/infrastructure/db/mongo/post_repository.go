package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

const postCollection = "posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postCollection)}
}

type mongoPost struct {
	ID          string   `bson:"_id"`
	Title       string   `bson:"title"`
	URLSlug     string   `bson:"url_slug"`
	Thumbnail   string   `bson:"thumbnail,omitempty"`
	Description string   `bson:"description,omitempty"`
	Content     string   `bson:"content"`
	IsPublic    bool     `bson:"is_public"`
	AuthorID    string   `bson:"author_id"`
	TagIDs      []string `bson:"tag_ids"`
	CreatedAt   int64    `bson:"created_at"`
	UpdatedAt   int64    `bson:"updated_at"`
}

func toMongoPost(p *domain.Post) mongoPost {
	tagIDs := p.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return mongoPost{
		ID:          p.ID,
		Title:       p.Title,
		URLSlug:     p.URLSlug,
		Thumbnail:   p.Thumbnail,
		Description: p.Description,
		Content:     p.Content,
		IsPublic:    p.IsPublic,
		AuthorID:    p.AuthorID,
		TagIDs:      tagIDs,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

func (m mongoPost) toDomain() domain.Post {
	return domain.Post{
		ID:          m.ID,
		Title:       m.Title,
		URLSlug:     m.URLSlug,
		Thumbnail:   m.Thumbnail,
		Description: m.Description,
		Content:     m.Content,
		IsPublic:    m.IsPublic,
		AuthorID:    m.AuthorID,
		TagIDs:      m.TagIDs,
		CreatedAt:   unixToTime(m.CreatedAt),
		UpdatedAt:   unixToTime(m.UpdatedAt),
	}
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoPost(post)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	post := mp.toDomain()
	return &post, nil
}

func (r *MongoPostRepository) FindByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return r.findMany(ctx, bson.M{"author_id": authorID})
}

func (r *MongoPostRepository) FindPublic(ctx context.Context) ([]domain.Post, error) {
	return r.findMany(ctx, bson.M{"is_public": true})
}

func (r *MongoPostRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []domain.Post
	for cursor.Next(ctx) {
		var mp mongoPost
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, post *domain.Post) error {
	// The tag_ids field is owned by AddTags/RemoveTags; replacing the whole
	// document would race a concurrent reconciliation.
	update := bson.M{"$set": bson.M{
		"title":       post.Title,
		"url_slug":    post.URLSlug,
		"thumbnail":   post.Thumbnail,
		"description": post.Description,
		"content":     post.Content,
		"is_public":   post.IsPublic,
		"updated_at":  post.UpdatedAt.Unix(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoPostRepository) AddTags(ctx context.Context, postID string, tagIDs []string) error {
	update := bson.M{"$addToSet": bson.M{"tag_ids": bson.M{"$each": tagIDs}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("add tags: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoPostRepository) RemoveTags(ctx context.Context, postID string, tagIDs []string) error {
	update := bson.M{"$pull": bson.M{"tag_ids": bson.M{"$in": tagIDs}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("remove tags: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoPostRepository) RemoveTagFromAll(ctx context.Context, tagID string) error {
	filter := bson.M{"tag_ids": tagID}
	update := bson.M{"$pull": bson.M{"tag_ids": tagID}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("remove tag from all posts: %w", err)
	}
	return nil
}
