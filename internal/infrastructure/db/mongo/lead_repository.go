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

const collectionLeads = "leads"

type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection(collectionLeads)}
}

type leadDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	ContactInfo domain.ContactInfo `bson:"contact_info"`
	Source      string             `bson:"source"`
	Status      string             `bson:"status"`
	AssignedRep string             `bson:"assigned_rep,omitempty"`
	CustomerID  string             `bson:"customer_id,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d leadDoc) toDomain() *domain.Lead {
	return &domain.Lead{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		ContactInfo: d.ContactInfo,
		Source:      domain.LeadSource(d.Source),
		Status:      domain.LeadStatus(d.Status),
		AssignedRep: d.AssignedRep,
		CustomerID:  d.CustomerID,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *LeadRepository) Insert(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := leadDoc{
		Name:        l.Name,
		ContactInfo: l.ContactInfo,
		Source:      string(l.Source),
		Status:      string(l.Status),
		AssignedRep: l.AssignedRep,
		CustomerID:  l.CustomerID,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	created := *l
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc leadDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*domain.Lead
	for cursor.Next(ctx) {
		var doc leadDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, doc.toDomain())
	}
	return leads, cursor.Err()
}

func (r *LeadRepository) UpdateByID(ctx context.Context, id string, fields ports.UpdateLeadFields) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.ContactEmail != nil {
		set["contact_info.email"] = *fields.ContactEmail
	}
	if fields.ContactPhone != nil {
		set["contact_info.phone"] = *fields.ContactPhone
	}
	if fields.Source != nil {
		set["source"] = string(*fields.Source)
	}
	if fields.Status != nil {
		set["status"] = string(*fields.Status)
	}
	if fields.AssignedRep != nil {
		set["assigned_rep"] = *fields.AssignedRep
	}
	if fields.CustomerID != nil {
		set["customer_id"] = *fields.CustomerID
	}
	if fields.Notes != nil {
		set["notes"] = *fields.Notes
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc leadDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LeadRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLeadNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

// EnsureIndexes creates query indexes on the leads collection.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
