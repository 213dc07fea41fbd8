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

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

const collectionSales = "sales"

// SaleRepository persists sales. No delete method: the API never removes a
// sale record.
type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

type saleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID  string             `bson:"customer_id"`
	Amount      float64            `bson:"amount"`
	Status      string             `bson:"status"`
	Date        time.Time          `bson:"date"`
	AssignedRep string             `bson:"assigned_rep,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d saleDoc) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:          d.ID.Hex(),
		CustomerID:  d.CustomerID,
		Amount:      d.Amount,
		Status:      domain.SaleStatus(d.Status),
		Date:        d.Date,
		AssignedRep: d.AssignedRep,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *SaleRepository) Insert(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := saleDoc{
		CustomerID:  s.CustomerID,
		Amount:      s.Amount,
		Status:      string(s.Status),
		Date:        s.Date,
		AssignedRep: s.AssignedRep,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc saleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []*domain.Sale
	for cursor.Next(ctx) {
		var doc saleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		sales = append(sales, doc.toDomain())
	}
	return sales, cursor.Err()
}

// UpdateByID applies the non-nil fields. The role-scoped projection has
// already run by the time a fields value reaches this method.
func (r *SaleRepository) UpdateByID(ctx context.Context, id string, fields ports.UpdateSaleFields) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.CustomerID != nil {
		set["customer_id"] = *fields.CustomerID
	}
	if fields.Amount != nil {
		set["amount"] = *fields.Amount
	}
	if fields.Status != nil {
		set["status"] = string(*fields.Status)
	}
	if fields.Date != nil {
		set["date"] = *fields.Date
	}
	if fields.AssignedRep != nil {
		set["assigned_rep"] = *fields.AssignedRep
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc saleDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("update sale: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates query indexes on the sales collection.
func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
