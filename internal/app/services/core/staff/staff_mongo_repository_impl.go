package staff

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) contracts.StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaff),
	}
}

type staffDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	FullName      string             `bson:"fullName"`
	Role          models.StaffRole   `bson:"role"`
	Specialty     string             `bson:"specialty,omitempty"`
	LicenseNumber string             `bson:"licenseNumber"`
	Password      string             `bson:"password"`
	Active        bool               `bson:"active"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d *staffDocument) toModel() *models.StaffMember {
	return &models.StaffMember{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		FullName:      d.FullName,
		Role:          d.Role,
		Specialty:     d.Specialty,
		LicenseNumber: d.LicenseNumber,
		Password:      d.Password,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (repo *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.StaffMember, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc staffDocument
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (repo *StaffMongoRepository) FindByEmail(ctx context.Context, email string) (*models.StaffMember, error) {
	var doc staffDocument
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (repo *StaffMongoRepository) Create(ctx context.Context, staffMember *models.StaffMember) (string, error) {
	now := time.Now().UTC()
	doc := staffDocument{
		Email:         staffMember.Email,
		FullName:      staffMember.FullName,
		Role:          staffMember.Role,
		Specialty:     staffMember.Specialty,
		LicenseNumber: staffMember.LicenseNumber,
		Password:      staffMember.Password,
		Active:        staffMember.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *StaffMongoRepository) UpdateActive(ctx context.Context, staffID string, active bool) error {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"active":    active,
		"updatedAt": time.Now().UTC(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
