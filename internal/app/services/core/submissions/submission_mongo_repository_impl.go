package submissions

import (
	"context"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) contracts.SubmissionRepository {
	return &SubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubmissions),
	}
}

// CreateSubmission inserts the record append-only. The collection carries a
// unique index on record_id; on a collision the identifier is regenerated
// and the insert retried. Collisions are vanishingly rare at this
// identifier length, so the loop is effectively a single iteration.
func (r *SubmissionMongoRepository) CreateSubmission(ctx context.Context, record *models.SubmissionRecord) error {
	for {
		_, err := r.Collection.InsertOne(ctx, record)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrMongoDBInsertDocument(err)
		}

		recordID, err := GenerateRecordID()
		if err != nil {
			return err
		}
		record.RecordID = recordID
	}
}
