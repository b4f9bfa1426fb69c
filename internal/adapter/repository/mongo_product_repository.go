package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

// buildProductFilter translates the use case's filter map into a Mongo query.
// Unset filters are omitted entirely; minPrice and maxPrice combine into one
// inclusive range on price.
func buildProductFilter(filter map[string]interface{}) bson.M {
	query := bson.M{}

	if name, ok := filter["name"].(string); ok && name != "" {
		query["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	for _, field := range []string{"category", "condition", "brand"} {
		if value, ok := filter[field].(string); ok && value != "" {
			query[field] = value
		}
	}
	if sellerID, ok := filter["sellerId"].(string); ok && sellerID != "" {
		query["sellerId"] = sellerID
	}

	priceRange := bson.M{}
	if minPrice, ok := filter["minPrice"].(float64); ok {
		priceRange["$gte"] = minPrice
	}
	if maxPrice, ok := filter["maxPrice"].(float64); ok {
		priceRange["$lte"] = maxPrice
	}
	if len(priceRange) > 0 {
		query["price"] = priceRange
	}

	return query
}

// buildProductSort maps the catalog sort keys onto Mongo sort documents.
// Unknown values fall back to newest-created first.
func buildProductSort(sort string) bson.D {
	switch sort {
	case "priceAsc":
		return bson.D{{Key: "price", Value: 1}}
	case "priceDesc":
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	var product entity.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	query := buildProductFilter(filter)

	// Count and page are two independent queries; the catalog accepts that
	// they can disagree under concurrent writes.
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}

	opts := options.Find().SetSort(buildProductSort(sort))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Internal("Failed to decode products", err)
	}

	return products, total, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}

	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.NotFound("Product", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Product", nil)
	}

	return nil
}

func (r *mongoProductRepository) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, errors.NotFound("Product", err)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "stock": bson.M{"$gte": qty}},
		bson.M{
			"$inc": bson.M{"stock": -qty},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, errors.Internal("Failed to decrement product stock", err)
	}

	return result.ModifiedCount > 0, nil
}
