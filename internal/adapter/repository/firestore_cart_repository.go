package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) items(userID string) *firestore.CollectionRef {
	return r.client.Collection("carts").Doc(userID).Collection("items")
}

func (r *firestoreCartRepository) ListItems(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	iter := r.items(userID).OrderBy("addedAt", firestore.Asc).Documents(ctx)

	var items []*entity.CartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate cart items", err)
		}

		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse cart item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreCartRepository) GetItem(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	doc, err := r.items(userID).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Cart item", err)
		}
		return nil, errors.Internal("Failed to get cart item", err)
	}

	var item entity.CartItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse cart item data", err)
	}

	return &item, nil
}

func (r *firestoreCartRepository) SetItem(ctx context.Context, userID string, item *entity.CartItem) error {
	_, err := r.items(userID).Doc(item.ProductID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to save cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) DeleteItem(ctx context.Context, userID, productID string) error {
	_, err := r.items(userID).Doc(productID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart item", err)
	}

	return nil
}
