package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

const adminCollection = "admins"

type MongoAdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{coll: db.Collection(adminCollection)}
}

type mongoAdmin struct {
	ID             string `bson:"_id"`
	Email          string `bson:"email"`
	Salt           string `bson:"salt"`
	HashedPassword string `bson:"hashed_password"`
	EmailVerified  bool   `bson:"email_verified"`
	IsActive       bool   `bson:"is_active"`
	CreatedAt      int64  `bson:"created_at"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func toMongoAdmin(a *domain.Admin) mongoAdmin {
	return mongoAdmin{
		ID:             a.ID,
		Email:          a.Email,
		Salt:           a.Salt,
		HashedPassword: a.HashedPassword,
		EmailVerified:  a.EmailVerified,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt.Unix(),
		UpdatedAt:      a.UpdatedAt.Unix(),
	}
}

func (m mongoAdmin) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:             m.ID,
		Email:          m.Email,
		Salt:           m.Salt,
		HashedPassword: m.HashedPassword,
		EmailVerified:  m.EmailVerified,
		IsActive:       m.IsActive,
		CreatedAt:      unixToTime(m.CreatedAt),
		UpdatedAt:      unixToTime(m.UpdatedAt),
	}
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoAdmin(admin)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return admin, nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAdminRepository) findOne(ctx context.Context, filter bson.M) (*domain.Admin, error) {
	var ma mongoAdmin
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAdminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": admin.ID}, toMongoAdmin(admin))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func (r *MongoAdminRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
