package events

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventMongoRepository struct {
	Collection *mongo.Collection
}

func NewEventMongoRepository(db *mongo.Client, dbName string) contracts.EventRepository {
	return &EventMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEvents),
	}
}

// eventDocument mirrors models.MedicalEvent with a native ObjectID so the
// store owns id assignment.
type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StaffID     string             `bson:"staffId"`
	Type        models.EventType   `bson:"type"`
	Status      models.EventStatus `bson:"status"`
	Start       time.Time          `bson:"start"`
	End         time.Time          `bson:"end"`
	Specialty   string             `bson:"specialty,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *eventDocument) toModel() *models.MedicalEvent {
	return &models.MedicalEvent{
		ID:          d.ID.Hex(),
		StaffID:     d.StaffID,
		Type:        d.Type,
		Status:      d.Status,
		Start:       d.Start,
		End:         d.End,
		Specialty:   d.Specialty,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (repo *EventMongoRepository) ListScheduledByStaff(ctx context.Context, staffID string, from, to time.Time) ([]models.MedicalEvent, error) {
	filter := bson.M{
		"staffId": staffID,
		"status":  models.EventStatusScheduled,
	}
	if !from.IsZero() {
		filter["end"] = bson.M{"$gt": from}
	}
	if !to.IsZero() {
		filter["start"] = bson.M{"$lt": to}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.MedicalEvent
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		result = append(result, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (repo *EventMongoRepository) FindByID(ctx context.Context, eventID string) (*models.MedicalEvent, error) {
	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc eventDocument
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (repo *EventMongoRepository) Insert(ctx context.Context, event *models.MedicalEvent) (*models.MedicalEvent, error) {
	now := time.Now().UTC()
	doc := eventDocument{
		StaffID:     event.StaffID,
		Type:        event.Type,
		Status:      models.EventStatusScheduled,
		Start:       event.Start,
		End:         event.End,
		Specialty:   event.Specialty,
		Description: event.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toModel(), nil
}

func (repo *EventMongoRepository) UpdateStatus(ctx context.Context, eventID string, from, to models.EventStatus) (*models.MedicalEvent, error) {
	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	// the filter pins the current status so concurrent transitions cannot
	// both succeed
	filter := bson.M{"_id": objectID, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc eventDocument
	err = repo.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doc.toModel(), nil
}
