package catalog

import (
	"context"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CatalogMongoRepository struct {
	Languages *mongo.Collection
	Forms     *mongo.Collection
	Questions *mongo.Collection
	Options   *mongo.Collection
	RedFlags  *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) contracts.CatalogRepository {
	database := db.Database(dbName)
	return &CatalogMongoRepository{
		Languages: database.Collection(constvars.MongoCollectionLanguages),
		Forms:     database.Collection(constvars.MongoCollectionForms),
		Questions: database.Collection(constvars.MongoCollectionQuestions),
		Options:   database.Collection(constvars.MongoCollectionOptions),
		RedFlags:  database.Collection(constvars.MongoCollectionRedFlags),
	}
}

func (r *CatalogMongoRepository) FindLanguages(ctx context.Context) ([]models.Language, error) {
	cursor, err := r.Languages.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"code": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var languages []models.Language
	if err := cursor.All(ctx, &languages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return languages, nil
}

func (r *CatalogMongoRepository) FindForms(ctx context.Context) ([]models.Form, error) {
	cursor, err := r.Forms.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"form_id": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return forms, nil
}

func (r *CatalogMongoRepository) FindFormByID(ctx context.Context, formID string) (*models.Form, error) {
	var form models.Form
	err := r.Forms.FindOne(ctx, bson.M{"form_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &form, nil
}

func (r *CatalogMongoRepository) FindQuestionsByFormID(ctx context.Context, formID string) ([]models.Question, error) {
	cursor, err := r.Questions.Find(ctx,
		bson.M{"form_id": formID},
		options.Find().SetSort(bson.M{"sequence_no": 1}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questions, nil
}

func (r *CatalogMongoRepository) FindOptionsByQuestionIDs(ctx context.Context, questionIDs []string) ([]models.Option, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.Options.Find(ctx,
		bson.M{"question_id": bson.M{"$in": questionIDs}},
		options.Find().SetSort(bson.M{"sequence_no": 1}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Option
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *CatalogMongoRepository) FindRedFlagsByFormID(ctx context.Context, formID string) ([]models.RedFlag, error) {
	cursor, err := r.RedFlags.Find(ctx,
		bson.M{"form_id": formID},
		options.Find().SetSort(bson.M{"red_flag_id": 1}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var flags []models.RedFlag
	if err := cursor.All(ctx, &flags); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return flags, nil
}

func (r *CatalogMongoRepository) FindRedFlagByID(ctx context.Context, redFlagID string) (*models.RedFlag, error) {
	var flag models.RedFlag
	err := r.RedFlags.FindOne(ctx, bson.M{"red_flag_id": redFlagID}).Decode(&flag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &flag, nil
}
